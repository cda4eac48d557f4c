package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/videobrief/videobrief/internal/analyzer"
	"github.com/videobrief/videobrief/internal/models"
)

// Run executes the summarization stages in order. The extracted audio file is
// removed as soon as transcription has consumed it; captured frames stay
// alive until the session or export completes.
func (p *implPipeline) Run(ctx context.Context, src *models.VideoSource, name string) (*models.ExportBundle, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting video summarization: %s", src.Path)
	p.logger.Info(ctx, "========================================")

	workDir := src.TempDir
	if workDir == "" {
		dir, err := os.MkdirTemp(p.cfg.Paths.Temp, "run-*")
		if err != nil {
			return nil, fmt.Errorf("create work dir: %w", err)
		}
		workDir = dir
		// The session now owns this directory; Close removes it along with
		// any captured frames. The caller's video file itself is untouched.
		src.TempDir = dir
	}

	// Step 1: Extract audio
	audioPath, err := p.media.ExtractAudio(ctx, src.Path, workDir)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}

	// Step 2: Transcribe; the audio file is consumed here and removed
	// regardless of the outcome.
	transcription, trErr := p.transcriber.Transcribe(ctx, audioPath)
	if rmErr := os.Remove(audioPath); rmErr != nil {
		p.logger.Warn(ctx, "Failed to remove audio file %s: %v", audioPath, rmErr)
	}
	if trErr != nil {
		return nil, fmt.Errorf("transcribe: %w", trErr)
	}

	// Step 3: Structured analysis
	analysis, err := p.analyzer.Analyze(ctx, transcription)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	if analysis.ParseError != "" && len(analysis.Keywords) == 0 {
		analysis.Keywords = analyzer.FallbackKeywords(transcription.FullText)
		p.logger.Info(ctx, "Using frequency-based fallback keywords for degraded analysis")
	}

	// Step 4: Refine transcription (best-effort)
	refined := p.analyzer.Refine(ctx, transcription.FullText)

	// Step 5: Capture highlight frames
	var frames []models.Frame
	if p.captureEnabled() && len(analysis.TimestampedHighlights) > 0 {
		timestamps := highlightTimestamps(analysis.TimestampedHighlights, p.cfg.Export.MaxHighlights)
		frames = p.media.CaptureFrames(ctx, src.Path, src.Duration, timestamps, filepath.Join(workDir, "frames"))
	}

	bundle := &models.ExportBundle{
		Name:          name,
		Analysis:      analysis,
		Transcription: transcription,
		Refined:       refined,
		Frames:        frames,
		Duration:      src.Duration,
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Summarization completed in %s (%d segments, %d frames)",
		time.Since(startTime).Round(time.Millisecond), len(transcription.Segments), len(frames))
	p.logger.Info(ctx, "========================================")

	return bundle, nil
}

func (p *implPipeline) captureEnabled() bool {
	return p.cfg.Export.CaptureHighlights != nil && *p.cfg.Export.CaptureHighlights
}

// highlightTimestamps takes at most max highlight timestamps in model order.
func highlightTimestamps(highlights []models.Highlight, max int) []float64 {
	if max > 0 && len(highlights) > max {
		highlights = highlights[:max]
	}
	timestamps := make([]float64, 0, len(highlights))
	for _, h := range highlights {
		timestamps = append(timestamps, h.Timestamp)
	}
	return timestamps
}
