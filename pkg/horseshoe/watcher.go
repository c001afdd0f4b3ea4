package horseshoe

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is the quiet period after the last file event before
// a reload.
const DefaultWatchDebounce = 500 * time.Millisecond

// fileWatcher calls onChange once a burst of writes to one file has settled.
// It watches the parent directory so editors that save by renaming a
// temporary file are seen.
type fileWatcher struct {
	w        *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func()
	onError  func(error)
	stop     chan struct{}
	done     chan struct{}
}

func newFileWatcher(path string, debounce time.Duration, onChange func(), onError func(error)) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	fw := &fileWatcher{
		w:        w,
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		onError:  onError,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go fw.loop()
	return fw, nil
}

// Close stops the loop and waits for it. It must be called once.
func (fw *fileWatcher) Close() {
	close(fw.stop)
	<-fw.done
}

func (fw *fileWatcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		name = ev.Name
	}
	return name == fw.path
}

func (fw *fileWatcher) loop() {
	defer close(fw.done)
	defer fw.w.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-fw.stop:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if !fw.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(fw.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if fw.onChange != nil {
				fw.onChange()
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			if fw.onError != nil {
				fw.onError(fmt.Errorf("watch %s: %w", fw.path, err))
			}
		}
	}
}
