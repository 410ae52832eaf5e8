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

	app "github.com/okian/champions/internal/app"
	"github.com/okian/champions/internal/config"
	"github.com/okian/champions/pkg/logger"
	"github.com/okian/champions/pkg/metrics"
)

// Process exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process plumbing so it can be tested.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := logger.InitWithWriter(stderr); err != nil {
		fmt.Fprintf(stderr, "failed to initialize logging: %v\n", err)
		return exitError
	}
	defer func() { _ = logger.Sync() }()

	// Load configuration (defaults -> optional file -> env), then flags.
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return exitUsage
	}

	fs := flag.NewFlagSet("champions", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Input, "input", cfg.Input, `Roster file to read ("-" for stdin)`)
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text, json or yaml")
	fs.StringVar(&cfg.MetricsTextfile, "metrics-textfile", cfg.MetricsTextfile, "Write Prometheus metrics to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return exitUsage
	}

	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Metrics are collected only when a textfile is requested.
	mm := metrics.NewManager(
		metrics.WithMetricsEnabled(cfg.MetricsTextfile != ""),
		metrics.WithCustomLabels(map[string]string{"format": cfg.Format}),
	)
	svc := app.New(app.WithLogger(log.Named("selector")), app.WithMetrics(mm))

	code := exitOK
	rep, err := svc.SelectRoster(ctx, cfg.Input)
	if err != nil {
		code = exitError
	} else if err := svc.Render(ctx, stdout, cfg.Format, rep); err != nil {
		code = exitError
	}

	if cfg.MetricsTextfile != "" {
		if err := mm.WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.Error(ctx, "failed to write metrics textfile", logger.String("path", cfg.MetricsTextfile), logger.Error(err))
			code = exitError
		}
	}
	return code
}
