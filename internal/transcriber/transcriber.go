package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/videobrief/videobrief/internal/models"
)

// whisperOutput mirrors the JSON whisper.cpp writes with -oj. Offsets are in
// milliseconds.
type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe runs whisper.cpp on the audio file and parses its JSON output
// into an ordered segment list. Segment text is trimmed; the full text is the
// model's own concatenation, independently trimmed.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*models.TranscriptionResult, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAudioNotFound, audioPath)
	}

	modelPath := filepath.Join(t.cfg.Whisper.ModelDir, ModelFileForQuality(t.cfg.Whisper.Quality))
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("%w: model file missing at %s", ErrModelUnavailable, modelPath)
	}

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing with %s model (%d threads): %s",
		t.cfg.Whisper.Quality, t.cfg.Whisper.Threads, audioPath)

	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"-oj",
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}
	if t.cfg.Whisper.Language != "" {
		args = append(args, "-l", t.cfg.Whisper.Language)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	jsonPath := outputPrefix + ".json"
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}
	defer func() {
		if rmErr := os.Remove(jsonPath); rmErr != nil {
			t.logger.Warn(ctx, "Failed to remove whisper output %s: %v", jsonPath, rmErr)
		}
	}()

	result, err := parseWhisperOutput(data)
	if err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "Transcription completed: %d segments, %d characters",
		len(result.Segments), len(result.FullText))
	return result, nil
}

func parseWhisperOutput(data []byte) (*models.TranscriptionResult, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	segments := make([]models.Segment, 0, len(out.Transcription))
	var full strings.Builder
	for _, seg := range out.Transcription {
		full.WriteString(seg.Text)
		segments = append(segments, models.Segment{
			Start: float64(seg.Offsets.From) / 1000,
			End:   float64(seg.Offsets.To) / 1000,
			Text:  strings.TrimSpace(seg.Text),
		})
	}

	return &models.TranscriptionResult{
		FullText: strings.TrimSpace(full.String()),
		Segments: segments,
	}, nil
}
