package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/videobrief/videobrief/internal/models"
)

// endOfStreamEpsilon backs the seek position off the stream end, where a
// single-frame decode can fail.
const endOfStreamEpsilon = 0.01

// CaptureFrames extracts one still image per timestamp. Timestamps outside
// [0, duration) are dropped; a capture failure skips just that timestamp.
func (m *implMedia) CaptureFrames(ctx context.Context, videoPath string, duration float64, timestamps []float64, outDir string) []models.Frame {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		m.logger.Warn(ctx, "Failed to create frames dir %s: %v", outDir, err)
		return nil
	}

	var frames []models.Frame
	for i, ts := range timestamps {
		if ts < 0 || (duration > 0 && ts >= duration) {
			m.logger.Debug(ctx, "Skipping out-of-range timestamp %.2fs (duration %.2fs)", ts, duration)
			continue
		}

		seek := ts
		if duration > 0 && seek > duration-endOfStreamEpsilon {
			seek = duration - endOfStreamEpsilon
		}

		imagePath := filepath.Join(outDir, fmt.Sprintf("frame_%d_%ds.jpg", i, int(ts)))
		args := []string{
			"-y",
			"-ss", strconv.FormatFloat(seek, 'f', 3, 64),
			"-i", videoPath,
			"-frames:v", "1",
			"-q:v", "2",
			imagePath,
		}
		if _, err := m.executor.Execute(ctx, "ffmpeg", args...); err != nil {
			m.logger.Warn(ctx, "Frame capture failed at %.2fs: %v", ts, err)
			continue
		}
		if _, err := os.Stat(imagePath); err != nil {
			m.logger.Warn(ctx, "Frame capture produced no file at %.2fs", ts)
			continue
		}

		frames = append(frames, models.Frame{Timestamp: ts, ImagePath: imagePath})
	}

	m.logger.Info(ctx, "Captured %d/%d highlight frames", len(frames), len(timestamps))
	return frames
}
