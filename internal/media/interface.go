package media

import (
	"context"

	"github.com/videobrief/videobrief/internal/models"
)

// Media decodes video containers: audio track extraction and still-frame
// capture. Both shell out to ffmpeg through the executor.
type Media interface {
	// ExtractAudio writes the video's audio track to a standalone file in the
	// configured codec and returns its path. The caller owns the file.
	ExtractAudio(ctx context.Context, videoPath, outDir string) (string, error)

	// CaptureFrames extracts one still image per requested timestamp into
	// outDir. Individual capture failures are skipped silently; out-of-range
	// timestamps are dropped.
	CaptureFrames(ctx context.Context, videoPath string, duration float64, timestamps []float64, outDir string) []models.Frame
}
