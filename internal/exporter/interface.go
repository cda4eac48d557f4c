package exporter

import (
	"context"

	"github.com/videobrief/videobrief/internal/models"
)

// Exporter renders an ExportBundle into downloadable documents. Each renderer
// is independent: markdown always succeeds, while the Word and PDF renderers
// report absence (ok=false) instead of failing, so a missing capability
// surfaces as an install hint rather than a crash.
type Exporter interface {
	Markdown(ctx context.Context, bundle *models.ExportBundle) string
	Word(ctx context.Context, bundle *models.ExportBundle) ([]byte, bool)
	PDF(ctx context.Context, bundle *models.ExportBundle) ([]byte, bool)

	// MaterializeFrames relocates captured frame images next to a written
	// export so file-based outputs keep their image links after cleanup.
	MaterializeFrames(ctx context.Context, bundle *models.ExportBundle, destDir string) *models.ExportBundle
}
