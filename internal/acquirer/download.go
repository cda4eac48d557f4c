package acquirer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/videobrief/videobrief/internal/models"
)

// Download fetches a remote video with yt-dlp, preferring the best combined
// audio+video stream in a widely-compatible container, then scans the output
// directory for the downloaded file.
func (a *implAcquirer) Download(ctx context.Context, url string) (*models.VideoSource, error) {
	if _, err := a.executor.LookPath("yt-dlp"); err != nil {
		return nil, ErrDownloaderMissing
	}

	dir := filepath.Join(a.cfg.Paths.Temp, uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}

	a.logger.Info(ctx, "Downloading video: %s", url)

	args := []string{
		"--format", "best[ext=mp4]/best[ext=webm]/best",
		"--output", filepath.Join(dir, "video.%(ext)s"),
		"--merge-output-format", "mp4",
		"--quiet",
		"--no-warnings",
		strings.TrimSpace(url),
	}
	if _, err := a.executor.Execute(ctx, "yt-dlp", args...); err != nil {
		os.RemoveAll(dir)
		return nil, classifyDownloadError(err)
	}

	path, err := findDownloadedMedia(dir)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	a.logger.Info(ctx, "Downloaded: %s", path)

	src := a.probe(ctx, path)
	src.TempDir = dir
	return src, nil
}

// classifyDownloadError maps yt-dlp diagnostics onto the failure taxonomy.
func classifyDownloadError(err error) error {
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "ffmpeg"):
		return ErrMediaToolMissing
	case strings.Contains(lower, "private"):
		return ErrSourceUnavailable
	case strings.Contains(lower, "unavailable"):
		return ErrSourceUnavailable
	default:
		return fmt.Errorf("%w: %s", ErrDownloadFailed, truncateDiagnostic(msg))
	}
}

// findDownloadedMedia returns the first file in dir with a known media
// extension.
func findDownloadedMedia(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("scan download dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, known := range downloadedMediaExtensions {
			if ext == known {
				return filepath.Join(dir, e.Name()), nil
			}
		}
	}
	return "", fmt.Errorf("%w: no video file was downloaded, the video may be private or restricted", ErrDownloadFailed)
}
