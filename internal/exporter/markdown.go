package exporter

import (
	"context"
	"fmt"
	"strings"

	"github.com/videobrief/videobrief/internal/models"
	"github.com/videobrief/videobrief/internal/transcriber"
)

// Markdown renders the bundle as a markdown document. Pure string templating;
// always succeeds.
func (e *implExporter) Markdown(ctx context.Context, bundle *models.ExportBundle) string {
	var b strings.Builder
	sd := bundle.Analysis

	fmt.Fprintf(&b, "# %s — Video Summary\n\n", bundle.Name)

	if sd != nil {
		if sd.MainPurpose != "" {
			b.WriteString("## Main Purpose\n\n")
			b.WriteString(sd.MainPurpose + "\n\n")
		}

		if len(sd.KeyInsights) > 0 {
			b.WriteString("## Key Insights\n\n")
			for _, insight := range sd.KeyInsights {
				fmt.Fprintf(&b, "- %s\n", insight)
			}
			b.WriteString("\n")
		}

		if len(sd.ImportantConcepts) > 0 {
			b.WriteString("## Important Concepts\n\n")
			for _, c := range sd.ImportantConcepts {
				fmt.Fprintf(&b, "- %s\n", c)
			}
			b.WriteString("\n")
		}

		if sd.StructuredSummary != "" {
			b.WriteString("## Structured Summary\n\n")
			b.WriteString(sd.StructuredSummary + "\n\n")
		} else if sd.Summary != "" {
			b.WriteString("## Summary\n\n")
			b.WriteString(sd.Summary + "\n\n")
		}

		if len(sd.Keywords) > 0 {
			b.WriteString("## Keywords\n\n")
			b.WriteString(strings.Join(sd.Keywords, ", ") + "\n\n")
		}

		if len(sd.TimestampedHighlights) > 0 {
			b.WriteString("## Timestamped Highlights\n\n")
			for _, h := range sd.TimestampedHighlights {
				fmt.Fprintf(&b, "- **[%s] %s** — %s\n",
					transcriber.FormatTimestamp(h.Timestamp), h.Title, h.Description)
			}
			b.WriteString("\n")
		}
	}

	if len(bundle.Frames) > 0 {
		b.WriteString("## Visual Highlights\n\n")
		for _, f := range bundle.Frames {
			fmt.Fprintf(&b, "![%s](%s)\n\n", transcriber.FormatTimestamp(f.Timestamp), f.ImagePath)
		}
	}

	if bundle.Refined != "" {
		b.WriteString("## Refined Transcript\n\n")
		b.WriteString(bundle.Refined + "\n\n")
	}

	if bundle.Transcription != nil && len(bundle.Transcription.Segments) > 0 {
		b.WriteString("## Full Transcript\n\n")
		for _, seg := range bundle.Transcription.Segments {
			fmt.Fprintf(&b, "**%s** %s\n\n", transcriber.FormatTimestamp(seg.Start), seg.Text)
		}
	}

	return b.String()
}
