package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var (
	// ErrSourceNotFound means the input video path does not exist.
	ErrSourceNotFound = errors.New("video file not found")

	// ErrExtractionFailed wraps a decode failure from ffmpeg.
	ErrExtractionFailed = errors.New("audio extraction failed")
)

// audioCodecs maps the configured target format to ffmpeg codec and extension.
var audioCodecs = map[string]struct {
	codec string
	ext   string
}{
	"mp3": {"libmp3lame", ".mp3"},
	"wav": {"pcm_s16le", ".wav"},
	"aac": {"aac", ".m4a"},
}

// ExtractAudio isolates the audio track into a mono file at the configured
// sample rate. A partially-written output is removed before the failure is
// propagated.
func (m *implMedia) ExtractAudio(ctx context.Context, videoPath, outDir string) (string, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, videoPath)
	}

	target, ok := audioCodecs[m.cfg.FFmpeg.AudioCodec]
	if !ok {
		target = audioCodecs["mp3"]
	}
	audioPath := filepath.Join(outDir, "audio"+target.ext)

	m.logger.Info(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	args := []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-ac", "1",
		"-ar", strconv.Itoa(m.cfg.FFmpeg.SampleRate),
		"-c:a", target.codec,
		audioPath,
	}
	if _, err := m.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		if _, statErr := os.Stat(audioPath); statErr == nil {
			if rmErr := os.Remove(audioPath); rmErr != nil {
				m.logger.Warn(ctx, "Failed to remove partial audio file %s: %v", audioPath, rmErr)
			}
		}
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	m.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}
