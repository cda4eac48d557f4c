package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/videobrief/videobrief/internal/acquirer"
	"github.com/videobrief/videobrief/internal/analyzer"
	"github.com/videobrief/videobrief/internal/config"
	"github.com/videobrief/videobrief/internal/exporter"
	"github.com/videobrief/videobrief/internal/logger"
	"github.com/videobrief/videobrief/internal/media"
	"github.com/videobrief/videobrief/internal/pipeline"
	"github.com/videobrief/videobrief/internal/server"
	"github.com/videobrief/videobrief/internal/transcriber"
	"github.com/videobrief/videobrief/pkg/executor"
)

const usage = `videobrief - video summarization pipeline

Usage:
  videobrief run [-config FILE] [-url URL | FILE] [-name NAME] [-out DIR]
  videobrief serve [-config FILE]
  videobrief watch [-config FILE]
`

// app bundles the wired components shared by every subcommand.
type app struct {
	cfg      *config.Config
	log      logger.Logger
	caps     acquirer.Capabilities
	acquirer acquirer.Acquirer
	media    media.Media
	pipeline pipeline.Pipeline
	exporter exporter.Exporter
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = runCommand(args)
	case "serve":
		err = serveCommand(args)
	case "watch":
		err = watchCommand(args)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildApp loads config, detects tool capabilities and wires the components.
func buildApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Temp} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	exec := executor.New()
	caps := acquirer.DetectCapabilities(cfg, exec)
	caps.Log(ctx, log)

	acq := acquirer.New(cfg, exec, log)
	med := media.New(cfg, exec, log)
	trans := transcriber.New(cfg, exec, log)
	anlz := analyzer.New(cfg, log)
	pipe := pipeline.New(cfg, med, trans, anlz, log)
	exp := exporter.New(cfg, log)

	return &app{
		cfg:      cfg,
		log:      log,
		caps:     caps,
		acquirer: acq,
		media:    med,
		pipeline: pipe,
		exporter: exp,
	}, nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func serveCommand(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to configuration file")
	fs.Parse(args)

	ctx, cancel := signalContext(context.Background())
	defer cancel()

	a, err := buildApp(ctx, *configPath)
	if err != nil {
		return err
	}

	srv := server.New(a.cfg, a.caps, a.acquirer, a.pipeline, a.exporter, a.log)
	if err := srv.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	a.log.Info(ctx, "Server stopped")
	return nil
}
