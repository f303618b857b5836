// Command tabdemo shows a tab panel in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/tabpanel/pkg/config"
	"github.com/odvcencio/tabpanel/pkg/logging"
	"github.com/odvcencio/tabpanel/pkg/tabs"
	"github.com/odvcencio/tabpanel/pkg/telemetry"
	"github.com/odvcencio/tabpanel/pkg/ui/backend"
	"github.com/odvcencio/tabpanel/pkg/ui/backend/tcell"
	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
	"github.com/odvcencio/tabpanel/pkg/ui/theme"
)

// Version information - set via ldflags during build
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

type options struct {
	configPath  string
	placement   string
	alignment   string
	logFile     string
	logLevel    string
	metrics     string
	showVersion bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("tabdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "config file (default: user then project config)")
	fs.StringVar(&opts.placement, "placement", "", "bar edge: top, bottom, left or right")
	fs.StringVar(&opts.alignment, "align", "", "tab alignment: start, center or end")
	fs.StringVar(&opts.logFile, "log", "", "write diagnostics to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&opts.metrics, "metrics", "", "serve Prometheus metrics on this address")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitConfig)
	}
	if opts.showVersion {
		fmt.Printf("tabdemo %s (%s)\n", version, commit)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts, newTerminalBackend); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeForError(err))
	}
}

func newTerminalBackend() (backend.Backend, error) {
	b, err := tcell.New()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// run starts the UI loop, the optional metrics server and the config
// watcher, and returns when the UI quits or ctx is done.
func run(ctx context.Context, opts options, newBackend func() (backend.Backend, error)) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return withExitCode(err, exitConfig)
	}

	logger, closeLog, err := openLogger(cfg.Logging)
	if err != nil {
		return withExitCode(err, exitConfig)
	}
	defer closeLog()

	palette, err := cfg.Theme.Palette()
	if err != nil {
		return withExitCode(err, exitConfig)
	}
	th := theme.New(palette)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := telemetry.NewMetrics(reg)

	d := newDemo(cfg, th, logger, metrics)

	be, err := newBackend()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	app := runtime.NewApp(runtime.AppConfig{
		Backend: be,
		Root:    d.root,
		Theme:   th,
		Update:  d.update,
	})

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer stop()
		err := app.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if cfg.Metrics.Enabled {
		g.Go(func() error {
			return serveMetrics(gctx, cfg.Metrics.Listen, newMetricsRouter(reg), logger, nil)
		})
	}

	if path := watchPath(opts); path != "" {
		g.Go(func() error {
			return config.Watch(gctx, path, func(next *config.Config, err error) {
				if gctx.Err() != nil {
					return
				}
				app.Call(func(a *runtime.App) { d.applyConfig(a, next, err) })
			})
		})
	}

	logger.Info("tabdemo started", "version", version, "tabs", len(cfg.UI.Tabs))
	err = g.Wait()
	logger.Info("tabdemo stopped")
	return err
}

// loadConfig reads the configured file, or the default locations, and
// applies command-line overrides on top.
func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromPath(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.placement != "" {
		p, err := tabs.ParsePlacement(opts.placement)
		if err != nil {
			return nil, fmt.Errorf("-placement: %w", err)
		}
		cfg.UI.Placement = p
	}
	if opts.alignment != "" {
		a, err := tabs.ParseAlign(opts.alignment)
		if err != nil {
			return nil, fmt.Errorf("-align: %w", err)
		}
		cfg.UI.Alignment = a
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.metrics != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Listen = opts.metrics
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger returns a JSON file logger, or a discarding one when no file
// is configured. The terminal is owned by the UI.
func openLogger(cfg config.LoggingConfig) (*logging.Logger, func(), error) {
	if cfg.File == "" {
		return logging.Discard(), func() {}, nil
	}
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	f, err := logging.OpenFile(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	return logging.New("tabdemo", level, f), func() { _ = f.Close() }, nil
}

// watchPath is the file reloaded on change: the -config file, else the
// project file when present.
func watchPath(opts options) string {
	if opts.configPath != "" {
		return opts.configPath
	}
	if _, err := os.Stat(config.ProjectConfigFile); err == nil {
		return config.ProjectConfigFile
	}
	return ""
}
