package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/videobrief/videobrief/internal/models"
	"github.com/videobrief/videobrief/internal/transcriber"
)

const (
	docFontName = "Calibri"
	docFontSize = 11
)

// Word renders the bundle as a .docx payload. Returns ok=false when the
// renderer is disabled or fails, never an error: the caller surfaces an
// install hint instead of a crash.
func (e *implExporter) Word(ctx context.Context, bundle *models.ExportBundle) (data []byte, ok bool) {
	if e.cfg.Export.Word == nil || !*e.cfg.Export.Word {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn(ctx, "Word export failed: %v", r)
			data, ok = nil, false
		}
	}()

	doc, err := godocx.NewDocument()
	if err != nil {
		e.logger.Warn(ctx, "Word export failed: %v", err)
		return nil, false
	}

	addHeading(doc, bundle.Name+" — Video Summary", 16)

	sd := bundle.Analysis
	if sd != nil {
		if sd.MainPurpose != "" {
			addHeading(doc, "Main Purpose", 13)
			addBody(doc, sd.MainPurpose)
		}
		if len(sd.KeyInsights) > 0 {
			addHeading(doc, "Key Insights", 13)
			for _, insight := range sd.KeyInsights {
				addBody(doc, "• "+insight)
			}
		}
		if len(sd.ImportantConcepts) > 0 {
			addHeading(doc, "Important Concepts", 13)
			addBody(doc, strings.Join(sd.ImportantConcepts, ", "))
		}
		if sd.StructuredSummary != "" {
			addHeading(doc, "Structured Summary", 13)
			for _, para := range strings.Split(sd.StructuredSummary, "\n\n") {
				if p := strings.TrimSpace(para); p != "" {
					addBody(doc, p)
				}
			}
		}
		if len(sd.Keywords) > 0 {
			addHeading(doc, "Keywords", 13)
			addBody(doc, strings.Join(sd.Keywords, ", "))
		}
		if len(sd.TimestampedHighlights) > 0 {
			addHeading(doc, "Timestamped Highlights", 13)
			for _, h := range sd.TimestampedHighlights {
				addBody(doc, fmt.Sprintf("[%s] %s — %s",
					transcriber.FormatTimestamp(h.Timestamp), h.Title, h.Description))
			}
		}
	}

	if bundle.Refined != "" {
		addHeading(doc, "Refined Transcript", 13)
		for _, para := range strings.Split(bundle.Refined, "\n\n") {
			if p := strings.TrimSpace(para); p != "" {
				addBody(doc, p)
			}
		}
	}

	if bundle.Transcription != nil && len(bundle.Transcription.Segments) > 0 {
		addHeading(doc, "Full Transcript", 13)
		for _, seg := range bundle.Transcription.Segments {
			addBody(doc, fmt.Sprintf("[%s] %s", transcriber.FormatTimestamp(seg.Start), seg.Text))
		}
	}

	// godocx writes to a path; round-trip through a temp file for the payload.
	tmp, err := os.CreateTemp("", "videobrief-*.docx")
	if err != nil {
		e.logger.Warn(ctx, "Word export failed: %v", err)
		return nil, false
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := doc.SaveTo(tmpPath); err != nil {
		e.logger.Warn(ctx, "Word export failed: %v", err)
		return nil, false
	}
	payload, err := os.ReadFile(filepath.Clean(tmpPath))
	if err != nil {
		e.logger.Warn(ctx, "Word export failed: %v", err)
		return nil, false
	}
	return payload, true
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(docFontName).Size(size).Bold(true)
}

func addBody(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(docFontName).Size(docFontSize)
}
