package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/videobrief/videobrief/internal/exporter"
	"github.com/videobrief/videobrief/internal/models"
	"github.com/videobrief/videobrief/internal/pipeline"
)

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to configuration file")
	url := fs.String("url", "", "video URL to download instead of a local file")
	name := fs.String("name", "", "display name for the exported documents")
	outDir := fs.String("out", "", "output directory (defaults to paths.output)")
	fs.Parse(args)

	ctx, cancel := signalContext(context.Background())
	defer cancel()

	a, err := buildApp(ctx, *configPath)
	if err != nil {
		return err
	}

	var src *models.VideoSource
	displayName := *name
	switch {
	case *url != "":
		src, err = a.acquirer.Download(ctx, *url)
		if displayName == "" {
			displayName = "YouTube_Video"
		}
	case fs.NArg() == 1:
		path := fs.Arg(0)
		src, err = a.acquirer.FromPath(ctx, path)
		if displayName == "" {
			displayName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
	default:
		return fmt.Errorf("exactly one of -url or a video file argument is required")
	}
	if err != nil {
		return err
	}

	sess := pipeline.NewSession(uuid.NewString(), displayName, src, a.log)
	defer sess.Close(ctx)

	bundle, err := a.pipeline.Run(ctx, src, displayName)
	if err != nil {
		return err
	}
	sess.SetBundle(bundle)

	dest := *outDir
	if dest == "" {
		dest = a.cfg.Paths.Output
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	return writeExports(ctx, a, bundle, dest)
}

// writeExports renders all three document formats into dest. A renderer
// reporting absence is logged with a hint and skipped; it never fails the run.
func writeExports(ctx context.Context, a *app, bundle *models.ExportBundle, dest string) error {
	bundle = a.exporter.MaterializeFrames(ctx, bundle, dest)

	mdName, _ := exporter.Filename(bundle.Name, "markdown")
	mdPath := filepath.Join(dest, mdName)
	if err := os.WriteFile(mdPath, []byte(a.exporter.Markdown(ctx, bundle)), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	a.log.Info(ctx, "Wrote %s", mdPath)

	if data, ok := a.exporter.Word(ctx, bundle); ok {
		docxName, _ := exporter.Filename(bundle.Name, "word")
		docxPath := filepath.Join(dest, docxName)
		if err := os.WriteFile(docxPath, data, 0644); err != nil {
			return fmt.Errorf("write word document: %w", err)
		}
		a.log.Info(ctx, "Wrote %s", docxPath)
	} else {
		a.log.Warn(ctx, "Word export unavailable; enable export.word in the configuration")
	}

	if data, ok := a.exporter.PDF(ctx, bundle); ok {
		pdfName, _ := exporter.Filename(bundle.Name, "pdf")
		pdfPath := filepath.Join(dest, pdfName)
		if err := os.WriteFile(pdfPath, data, 0644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		a.log.Info(ctx, "Wrote %s", pdfPath)
	} else {
		a.log.Warn(ctx, "PDF export unavailable; enable export.pdf in the configuration")
	}

	return nil
}
