package exporter

import (
	"fmt"

	"github.com/videobrief/videobrief/internal/config"
	"github.com/videobrief/videobrief/internal/logger"
)

type implExporter struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Exporter instance
func New(cfg *config.Config, log logger.Logger) Exporter {
	return &implExporter{
		cfg:    cfg,
		logger: log,
	}
}

// formatExtensions maps export format names to document filename suffixes.
var formatExtensions = map[string]string{
	"markdown": ".md",
	"word":     ".docx",
	"pdf":      ".pdf",
}

// Filename derives the download filename for a bundle name and format, e.g.
// "lecture_summary.md".
func Filename(name, format string) (string, error) {
	ext, ok := formatExtensions[format]
	if !ok {
		return "", fmt.Errorf("unknown export format: %s", format)
	}
	if name == "" {
		name = "Video"
	}
	return name + "_summary" + ext, nil
}
