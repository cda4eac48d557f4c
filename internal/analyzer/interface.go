package analyzer

import (
	"context"

	"github.com/videobrief/videobrief/internal/models"
)

// Analyzer sends transcripts to a hosted chat-completion model. Analyze
// produces the structured analysis; Refine rewrites the raw transcript into
// clean prose and never fails (it falls back to the input verbatim).
type Analyzer interface {
	Analyze(ctx context.Context, transcription *models.TranscriptionResult) (*models.AnalysisResult, error)
	Refine(ctx context.Context, rawTranscription string) string
}
