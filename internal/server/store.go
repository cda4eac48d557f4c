package server

import (
	"context"
	"sync"

	"github.com/videobrief/videobrief/internal/pipeline"
)

// sessionStore is the mutex-guarded registry of active sessions. Sessions are
// independent; the store only coordinates lookup and removal.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*pipeline.Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*pipeline.Session)}
}

func (s *sessionStore) put(sess *pipeline.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

func (s *sessionStore) get(id string) (*pipeline.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *sessionStore) remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	delete(s.sessions, id)
	sess.Close(ctx)
	return true
}

func (s *sessionStore) closeAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.Close(ctx)
		delete(s.sessions, id)
	}
}
