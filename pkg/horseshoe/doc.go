// Package horseshoe embeds a horseshoe-shaped circular range slider in a Go
// program. A single thumb is dragged along an arc that leaves a gap at the
// bottom; its angle maps linearly onto a numeric reading.
//
// # Basic usage
//
//	s, err := horseshoe.New("thermostat.lua", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	s.SetListener(slider.ListenerFuncs{
//		Commit: func(r float64) { fmt.Println("set to", r) },
//	})
//	if err := s.Run(context.Background()); err != nil {
//		log.Fatal(err)
//	}
//
// # Configuration sources
//
//   - Disk file: [New] reads Lua, YAML or legacy "key value" files
//   - Embedded FS: [NewFromFS] reads from an [io/fs.FS]
//   - io.Reader: [NewFromReader] for generated content
//   - In memory: [NewFromConfig]
//
// With [Options.WatchConfig] a file configuration is reloaded in place when
// it changes on disk.
//
// # Headless use
//
// With [Options.Headless] no window is opened. The embedding program feeds
// pointer events with [Slider.HandlePointer] and draws [Slider.Frame] on its
// own canvas, for example the terminal or PNG hosts of this module.
//
// # Concurrency
//
// Every method is safe for concurrent use. Listener callbacks run
// synchronously after the internal lock is released, so a listener may call
// SetReading or Reading. Error and event handlers run on their own
// goroutines; panics in them are recovered.
package horseshoe
