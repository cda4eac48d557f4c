package pipeline

import (
	"github.com/videobrief/videobrief/internal/analyzer"
	"github.com/videobrief/videobrief/internal/config"
	"github.com/videobrief/videobrief/internal/logger"
	"github.com/videobrief/videobrief/internal/media"
	"github.com/videobrief/videobrief/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	media       media.Media
	transcriber transcriber.Transcriber
	analyzer    analyzer.Analyzer
	logger      logger.Logger
}

// New creates a new Pipeline instance
func New(cfg *config.Config, m media.Media, t transcriber.Transcriber, a analyzer.Analyzer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		media:       m,
		transcriber: t,
		analyzer:    a,
		logger:      log,
	}
}
