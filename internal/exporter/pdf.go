package exporter

import (
	"bytes"
	"context"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/videobrief/videobrief/internal/models"
	"github.com/videobrief/videobrief/internal/transcriber"
)

// keyPointBudget is the character budget per bulleted key point; longer
// points are truncated with an ellipsis marker.
const keyPointBudget = 80

// PDF renders the bundle as a PDF payload with a simple top-down layout:
// title, wrapped summary, bulleted key points, keywords. Returns ok=false on
// any internal failure instead of propagating it.
func (e *implExporter) PDF(ctx context.Context, bundle *models.ExportBundle) (data []byte, ok bool) {
	if e.cfg.Export.PDF == nil || !*e.cfg.Export.PDF {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn(ctx, "PDF export failed: %v", r)
			data, ok = nil, false
		}
	}()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(bundle.Name+" — Video Summary"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	sd := bundle.Analysis
	if sd != nil {
		if sd.Summary != "" {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(sd.Summary), "", "L", false)
			pdf.Ln(4)
		}

		if len(sd.KeyPoints) > 0 {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, "Key Points", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			for _, pt := range sd.KeyPoints {
				if len(pt) > keyPointBudget {
					pt = pt[:keyPointBudget] + "..."
				}
				pdf.MultiCell(0, 5, tr("- "+pt), "", "L", false)
			}
			pdf.Ln(4)
		}

		if len(sd.TimestampedHighlights) > 0 {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, "Highlights", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			for _, h := range sd.TimestampedHighlights {
				line := "[" + transcriber.FormatTimestamp(h.Timestamp) + "] " + h.Title
				pdf.MultiCell(0, 5, tr(line), "", "L", false)
			}
			pdf.Ln(4)
		}

		if len(sd.Keywords) > 0 {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, "Keywords", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(strings.Join(sd.Keywords, ", ")), "", "L", false)
			pdf.Ln(4)
		}
	}

	if bundle.Refined != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Refined Transcript", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(bundle.Refined), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		e.logger.Warn(ctx, "PDF export failed: %v", err)
		return nil, false
	}
	return buf.Bytes(), true
}
