// Package memory implements an in-memory session repository for development
// and testing. Sessions are lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"evidencias/internal/domain"
)

// SessionRepo implements domain.SessionRepository in memory.
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

var _ domain.SessionRepository = (*SessionRepo)(nil)

// NewSessionRepo creates an empty in-memory session repository.
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]*domain.Session)}
}

// Create stores a session.
func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = copySession(s)
	return nil
}

// GetByID retrieves a session, or (nil, nil) when absent or already expired.
func (r *SessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	if time.Now().After(s.ExpiresAt) {
		delete(r.sessions, id)
		return nil, nil
	}
	return copySession(s), nil
}

// Delete removes a session.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// DeleteExpired removes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for id, s := range r.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.sessions, id)
		}
	}
	return nil
}

func copySession(s *domain.Session) *domain.Session {
	cp := *s
	if s.Identity != nil {
		identity := *s.Identity
		cp.Identity = &identity
	}
	return &cp
}
