package transcriber

import (
	"context"

	"github.com/videobrief/videobrief/internal/models"
)

// Transcriber converts an audio file into timestamped text with whisper.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*models.TranscriptionResult, error)
}
