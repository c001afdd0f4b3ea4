// Package main provides the horseshoe command: a circular range slider that
// runs in a window, in a terminal, or renders a PNG snapshot.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-horseshoe/internal/config"
	"github.com/opd-ai/go-horseshoe/internal/profiling"
)

// Version is the current version of horseshoe.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app holds the persistent flags shared by every command.
type app struct {
	stdout, stderr io.Writer

	configPath string
	logLevel   string
	cpuProfile string
	memProfile string

	profiler *profiling.Profiler
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if a.profiler != nil {
		if perr := a.profiler.Stop(); perr != nil {
			fmt.Fprintf(stderr, "Warning: failed to stop profiling: %v\n", perr)
		}
	}
	if err != nil {
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "horseshoe",
		Short:        "circular range slider",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         a.runWindow,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.startProfiling()
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "configuration file (Lua, YAML or legacy); defaults apply when empty")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (default from the configuration)")
	flags.StringVar(&a.cpuProfile, "cpuprofile", "", "write CPU profile to file")
	flags.StringVar(&a.memProfile, "memprofile", "", "write memory profile to file")

	root.AddCommand(
		a.runCommand(),
		a.snapshotCommand(),
		a.tuiCommand(),
		a.convertCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *app) startProfiling() error {
	cfg := profiling.Config{CPUProfilePath: a.cpuProfile, MemProfilePath: a.memProfile}
	if !cfg.Enabled() {
		return nil
	}
	a.profiler = profiling.New(cfg, a.logger(config.LogLevelInfo))
	if err := a.profiler.Start(); err != nil {
		a.profiler = nil
		return fmt.Errorf("start profiling: %w", err)
	}
	return nil
}

// loadConfig reads --config, or returns the defaults when it is empty.
func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath == "" {
		cfg := config.DefaultConfig()
		return &cfg, nil
	}
	if _, err := os.Stat(a.configPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", a.configPath)
		}
		return nil, fmt.Errorf("access configuration file %s: %w", a.configPath, err)
	}
	p, err := config.NewParser()
	if err != nil {
		return nil, err
	}
	defer p.Close()
	cfg, err := p.ParseFile(a.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// level resolves --log-level against the configured level.
func (a *app) level(configured config.LogLevel) (config.LogLevel, error) {
	if a.logLevel == "" {
		return configured, nil
	}
	return config.ParseLogLevel(a.logLevel)
}

// logger builds the stderr text logger used by every command.
func (a *app) logger(level config.LogLevel) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level.SlogLevel(), AddSource: level == config.LogLevelDebug}
	return slog.New(slog.NewTextHandler(a.stderr, opts))
}
