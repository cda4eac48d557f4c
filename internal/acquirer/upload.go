package acquirer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/videobrief/videobrief/internal/models"
)

// SaveUpload persists uploaded bytes to a fresh temp directory, preserving the
// original extension, and probes the result for metadata.
func (a *implAcquirer) SaveUpload(ctx context.Context, r io.Reader, filename string) (*models.VideoSource, error) {
	if !IsSupportedVideo(filename) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}

	dir := filepath.Join(a.cfg.Paths.Temp, uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	dst := filepath.Join(dir, "input"+filepath.Ext(filename))
	out, err := os.Create(dst)
	if err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	written, err := io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	a.logger.Info(ctx, "Saved upload %s (%d bytes) to %s", filename, written, dst)

	src := a.probe(ctx, dst)
	src.TempDir = dir
	return src, nil
}

// FromPath wraps an existing local video file without copying it.
func (a *implAcquirer) FromPath(ctx context.Context, path string) (*models.VideoSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("video file not found: %w", err)
	}
	if !IsSupportedVideo(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return a.probe(ctx, path), nil
}
