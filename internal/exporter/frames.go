package exporter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/videobrief/videobrief/internal/models"
)

// MaterializeFrames copies captured frame images into destDir/frames and
// returns a bundle whose frame paths are relative to destDir, so a written
// markdown file keeps working after the session's temp directory is removed.
// Copy failures drop the affected frame, mirroring the highlighter's
// per-frame tolerance.
func (e *implExporter) MaterializeFrames(ctx context.Context, bundle *models.ExportBundle, destDir string) *models.ExportBundle {
	if len(bundle.Frames) == 0 {
		return bundle
	}

	framesDir := filepath.Join(destDir, "frames")
	if err := os.MkdirAll(framesDir, 0755); err != nil {
		e.logger.Warn(ctx, "Failed to create frames dir %s: %v", framesDir, err)
		out := *bundle
		out.Frames = nil
		return &out
	}

	out := *bundle
	out.Frames = make([]models.Frame, 0, len(bundle.Frames))
	for _, f := range bundle.Frames {
		name := fmt.Sprintf("%s_%s", bundle.Name, filepath.Base(f.ImagePath))
		dst := filepath.Join(framesDir, name)
		if err := copyFile(f.ImagePath, dst); err != nil {
			e.logger.Warn(ctx, "Failed to copy frame %s: %v", f.ImagePath, err)
			continue
		}
		out.Frames = append(out.Frames, models.Frame{
			Timestamp: f.Timestamp,
			ImagePath: filepath.Join("frames", name),
		})
	}
	return &out
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
