package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/videobrief/videobrief/internal/models"
)

// Analyze sends the transcript to the model and parses the structured JSON
// response. A malformed response is recovered into a degraded result with
// ParseError set; every other failure propagates wrapped in ErrAnalysisFailed.
func (a *implAnalyzer) Analyze(ctx context.Context, transcription *models.TranscriptionResult) (*models.AnalysisResult, error) {
	if a.apiKey == "" {
		return nil, ErrMissingCredential
	}

	user := fmt.Sprintf(analyzeUserPrompt, segmentsBlock(transcription.Segments), transcription.FullText)

	a.logger.Info(ctx, "Requesting structured analysis (%s)", a.cfg.OpenAI.Model)

	content, err := a.client.complete(ctx, analyzeSystemPrompt, user, 0.2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	result, parseErr := parseAnalysis(content)
	if parseErr != nil {
		a.logger.Warn(ctx, "Analysis response was not valid JSON, continuing with degraded result: %v", parseErr)
		return degradedResult(parseErr), nil
	}
	return result, nil
}

// segmentsBlock renders segments as a timestamp-annotated block, one
// "[start s - end s] text" line per segment.
func segmentsBlock(segments []models.Segment) string {
	lines := make([]string, 0, len(segments))
	for _, s := range segments {
		lines = append(lines, fmt.Sprintf("[%.1fs - %.1fs] %s", s.Start, s.End, s.Text))
	}
	return strings.Join(lines, "\n")
}

// stripCodeFence removes a surrounding triple-backtick fence, with an
// optional json language tag, from a model response.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimPrefix(s, "JSON")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// parseAnalysis decodes the model's JSON, defaults missing optional keys to
// empty values and derives the compatibility fields.
func parseAnalysis(content string) (*models.AnalysisResult, error) {
	cleaned := stripCodeFence(content)

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, err
	}

	normalize(&result)
	return &result, nil
}

// normalize guarantees non-nil slices and fills the derived summary and
// key_points compatibility fields when the model omitted them.
func normalize(r *models.AnalysisResult) {
	if r.KeyInsights == nil {
		r.KeyInsights = []string{}
	}
	if r.ImportantConcepts == nil {
		r.ImportantConcepts = []string{}
	}
	if r.Keywords == nil {
		r.Keywords = []string{}
	}
	if r.TimestampedHighlights == nil {
		r.TimestampedHighlights = []models.Highlight{}
	}
	if r.Summary == "" {
		r.Summary = strings.TrimSpace(r.MainPurpose + "\n\n" + r.StructuredSummary)
	}
	if r.KeyPoints == nil {
		r.KeyPoints = r.KeyInsights
	}
}

// degradedResult is the recovered stand-in for an unparseable analysis
// response: present but impoverished, so the pipeline can continue.
func degradedResult(parseErr error) *models.AnalysisResult {
	return &models.AnalysisResult{
		Summary:               "Summary generation completed but parsing failed.",
		KeyInsights:           []string{},
		ImportantConcepts:     []string{},
		Keywords:              []string{},
		TimestampedHighlights: []models.Highlight{},
		KeyPoints:             []string{},
		ParseError:            parseErr.Error(),
	}
}
