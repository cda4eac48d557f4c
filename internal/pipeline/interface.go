package pipeline

import (
	"context"

	"github.com/videobrief/videobrief/internal/models"
)

// Pipeline runs the full summarization flow on an acquired video: audio
// extraction, transcription, analysis, refinement and highlight capture.
// Stages execute strictly sequentially; each stage's output is the next
// stage's sole input.
type Pipeline interface {
	Run(ctx context.Context, src *models.VideoSource, name string) (*models.ExportBundle, error)
}
