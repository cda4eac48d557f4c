package main

import (
	"context"
	"flag"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/videobrief/videobrief/internal/pipeline"
	"github.com/videobrief/videobrief/internal/watcher"
)

func watchCommand(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to configuration file")
	fs.Parse(args)

	ctx, cancel := signalContext(context.Background())
	defer cancel()

	a, err := buildApp(ctx, *configPath)
	if err != nil {
		return err
	}

	handler := func(ctx context.Context, filePath string) error {
		src, err := a.acquirer.FromPath(ctx, filePath)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

		sess := pipeline.NewSession(uuid.NewString(), name, src, a.log)
		defer sess.Close(ctx)

		bundle, err := a.pipeline.Run(ctx, src, name)
		if err != nil {
			return err
		}
		sess.SetBundle(bundle)

		return writeExports(ctx, a, bundle, a.cfg.Paths.Output)
	}

	w, err := watcher.New(a.cfg.Paths.Input, handler, a.log, a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "videobrief watch mode ready")
	a.log.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
	a.log.Info(ctx, "Output: %s", a.cfg.Paths.Output)
	a.log.Info(ctx, "Press Ctrl+C to stop")
	a.log.Info(ctx, "========================================")

	if err := w.Start(ctx); err != nil && err != context.Canceled {
		return err
	}
	a.log.Info(ctx, "Watch mode stopped")
	return nil
}
