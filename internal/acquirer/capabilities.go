package acquirer

import (
	"context"
	"os"
	"path/filepath"

	"github.com/videobrief/videobrief/internal/config"
	"github.com/videobrief/videobrief/internal/logger"
	"github.com/videobrief/videobrief/internal/transcriber"
	"github.com/videobrief/videobrief/pkg/executor"
)

// Capabilities records which external tools were found at startup. It is
// computed once and passed as configuration instead of probing repeatedly.
type Capabilities struct {
	FFmpeg       bool
	FFprobe      bool
	Downloader   bool
	Whisper      bool
	WhisperModel bool
}

// DetectCapabilities probes PATH and the configured whisper model directory.
func DetectCapabilities(cfg *config.Config, exec executor.Executor) Capabilities {
	caps := Capabilities{}
	if _, err := exec.LookPath("ffmpeg"); err == nil {
		caps.FFmpeg = true
	}
	if _, err := exec.LookPath("ffprobe"); err == nil {
		caps.FFprobe = true
	}
	if _, err := exec.LookPath("yt-dlp"); err == nil {
		caps.Downloader = true
	}
	if _, err := os.Stat(cfg.Whisper.BinaryPath); err == nil {
		caps.Whisper = true
	} else if _, err := exec.LookPath(cfg.Whisper.BinaryPath); err == nil {
		caps.Whisper = true
	}
	if _, err := os.Stat(filepath.Join(cfg.Whisper.ModelDir, transcriber.ModelFileForQuality(cfg.Whisper.Quality))); err == nil {
		caps.WhisperModel = true
	}
	return caps
}

// Log prints the capability summary with install hints for missing tools.
func (c Capabilities) Log(ctx context.Context, log logger.Logger) {
	log.Info(ctx, "Capabilities: ffmpeg=%t ffprobe=%t yt-dlp=%t whisper=%t model=%t",
		c.FFmpeg, c.FFprobe, c.Downloader, c.Whisper, c.WhisperModel)
	if !c.FFmpeg {
		log.Warn(ctx, "ffmpeg not found: audio extraction and frame capture will fail (install from https://ffmpeg.org/download.html)")
	}
	if !c.Downloader {
		log.Warn(ctx, "yt-dlp not found: URL downloads disabled (install from https://github.com/yt-dlp/yt-dlp)")
	}
	if !c.Whisper || !c.WhisperModel {
		log.Warn(ctx, "whisper binary or model missing: transcription will fail until installed")
	}
}
