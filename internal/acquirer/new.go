package acquirer

import (
	"github.com/videobrief/videobrief/internal/config"
	"github.com/videobrief/videobrief/internal/logger"
	"github.com/videobrief/videobrief/pkg/executor"
)

type implAcquirer struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Acquirer instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Acquirer {
	return &implAcquirer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
