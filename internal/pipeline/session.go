package pipeline

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/videobrief/videobrief/internal/logger"
	"github.com/videobrief/videobrief/internal/models"
)

// Session is the explicit state object for one video's lifecycle: created
// when a source is acquired, it holds the in-flight VideoSource and, after a
// run, the immutable result bundle. Close removes the temporary artifacts the
// session owns.
type Session struct {
	mu sync.RWMutex

	ID        string
	Name      string
	Source    *models.VideoSource
	CreatedAt time.Time

	bundle *models.ExportBundle
	logger logger.Logger
}

// NewSession wraps an acquired source.
func NewSession(id, name string, src *models.VideoSource, log logger.Logger) *Session {
	return &Session{
		ID:        id,
		Name:      name,
		Source:    src,
		CreatedAt: time.Now(),
		logger:    log,
	}
}

// SetBundle stores a completed run's result snapshot.
func (s *Session) SetBundle(bundle *models.ExportBundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle = bundle
}

// Bundle returns the last completed result, or nil if no run has finished.
func (s *Session) Bundle() *models.ExportBundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// Reset clears the result snapshot while keeping the acquired source, so the
// pipeline can be re-run.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle = nil
}

// Close removes the session's temporary directory (uploaded or downloaded
// video plus captured frames). Sources wrapping caller-owned local files are
// left untouched.
func (s *Session) Close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle = nil
	if s.Source == nil || s.Source.TempDir == "" {
		return
	}
	if err := os.RemoveAll(s.Source.TempDir); err != nil {
		s.logger.Warn(ctx, "Failed to clean up session %s: %v", s.ID, err)
		return
	}
	s.logger.Debug(ctx, "Cleaned up session %s: %s", s.ID, s.Source.TempDir)
}
