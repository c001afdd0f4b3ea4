package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-horseshoe/internal/config"
	"github.com/opd-ai/go-horseshoe/internal/slider"
	"github.com/opd-ai/go-horseshoe/internal/snapshot"
	"github.com/opd-ai/go-horseshoe/internal/tui"
	"github.com/opd-ai/go-horseshoe/pkg/horseshoe"
)

func (a *app) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "open the slider in a window (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runWindow,
	}
}

// runWindow opens the window on the calling goroutine. SIGHUP reloads the
// configuration; SIGINT and SIGTERM close the window.
func (a *app) runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	level, err := a.level(cfg.Logging.Level)
	if err != nil {
		return err
	}
	log := a.logger(level)

	opts := horseshoe.DefaultOptions()
	opts.Logger = horseshoe.NewSlogAdapter(log)
	var s horseshoe.Slider
	if a.configPath != "" {
		opts.WatchConfig = true
		s, err = horseshoe.New(a.configPath, &opts)
	} else {
		s, err = horseshoe.NewFromConfig(cfg, &opts)
	}
	if err != nil {
		return err
	}

	s.SetErrorHandler(func(err error) {
		fmt.Fprintf(a.stderr, "Warning: %v\n", err)
	})
	s.SetEventHandler(func(e horseshoe.Event) {
		fmt.Fprintf(a.stdout, "[%s] %s: %s\n", e.Timestamp.Format("15:04:05"), e.Type, e.Message)
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-hup:
				log.Info("received SIGHUP, reloading configuration")
				if err := s.ReloadConfig(); err != nil {
					log.Warn("reload failed", "error", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info("horseshoe starting", "version", Version, "config", a.configPath)
	if err := s.Run(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s\n", slider.FormatReading(s.Reading()))
	return nil
}

func (a *app) snapshotCommand() *cobra.Command {
	var (
		out     string
		reading float64
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the slider to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			level, err := a.level(cfg.Logging.Level)
			if err != nil {
				return err
			}
			log := a.logger(level)

			opts := horseshoe.Options{Headless: true, Logger: horseshoe.NewSlogAdapter(log)}
			s, err := horseshoe.NewFromConfig(cfg, &opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("reading") {
				s.SetReading(reading)
			}

			style, err := snapshotStyle(cfg)
			if err != nil {
				log.Warn("thumb image skipped", "error", err)
			}
			if err := snapshot.Save(out, s.Frame(), style); err != nil {
				return err
			}
			log.Info("snapshot written", "path", out, "reading", s.Reading())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "horseshoe.png", "output PNG file")
	cmd.Flags().Float64Var(&reading, "reading", 0, "reading to draw instead of the configured one")
	return cmd
}

// snapshotStyle converts the configured paints. A thumb image that cannot be
// read is reported and left out.
func snapshotStyle(cfg *config.Config) (snapshot.Style, error) {
	style := snapshot.Style{
		Background: cfg.Style.BackgroundColor,
		Track:      cfg.Style.ArcColor,
		Thumb:      cfg.Style.ThumbColor,
		Label:      cfg.Style.ThumbTextColor,
		TextSize:   cfg.Style.ThumbTextSize,
	}
	if cfg.Slider.ThumbImage == "" {
		return style, nil
	}
	f, err := os.Open(cfg.Slider.ThumbImage)
	if err != nil {
		return style, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return style, fmt.Errorf("decode %s: %w", cfg.Slider.ThumbImage, err)
	}
	style.ThumbImage = img
	return style, nil
}

func (a *app) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "drive the slider from the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			// The terminal belongs to bubbletea; only errors are logged.
			opts := horseshoe.Options{Headless: true, Logger: horseshoe.NewSlogAdapter(a.logger(config.LogLevelError))}
			s, err := horseshoe.NewFromConfig(cfg, &opts)
			if err != nil {
				return err
			}
			styles := tui.StylesFromConfig(cfg.Style)
			err = tui.Run(s, tui.Options{
				Title:  cfg.Window.Title,
				Step:   (cfg.Slider.Max - cfg.Slider.Min) / 100,
				Styles: &styles,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s\n", slider.FormatReading(s.Reading()))
			return nil
		},
	}
}

func (a *app) convertCommand() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "convert a configuration file to another format and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.ParseFormat(to)
			if err != nil {
				return err
			}
			content, err := config.MigrateFile(args[0], format)
			if err != nil {
				return fmt.Errorf("convert %s: %w", args[0], err)
			}
			_, err = a.stdout.Write(content)
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "lua", "target format: lua, yaml or legacy")
	return cmd
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(a.stdout, "horseshoe version %s\n", Version)
		},
	}
}
