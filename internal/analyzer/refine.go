package analyzer

import (
	"context"
	"fmt"
	"strings"
)

// Refine rewrites the raw transcription into clean prose. Refinement is
// best-effort: any failure, missing credential included, falls back to the
// raw text verbatim.
func (a *implAnalyzer) Refine(ctx context.Context, rawTranscription string) string {
	if a.apiKey == "" {
		a.logger.Warn(ctx, "Skipping transcription refinement: %v", ErrMissingCredential)
		return rawTranscription
	}

	a.logger.Info(ctx, "Refining transcription (%s)", a.cfg.OpenAI.Model)

	content, err := a.client.complete(ctx, refineSystemPrompt, fmt.Sprintf(refineUserPrompt, rawTranscription), 0.3)
	if err != nil {
		a.logger.Warn(ctx, "Transcription refinement failed, keeping raw text: %v", err)
		return rawTranscription
	}

	return strings.TrimSpace(content)
}
