package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fadilmartias/casting-intake/internal/model"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps intake sessions in process memory only. Nothing
// survives a restart.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*model.Session
	seed     model.CandidateDossier
	now      func() time.Time
}

func NewSessionRepository(seed model.CandidateDossier) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[uuid.UUID]*model.Session),
		seed:     seed,
		now:      time.Now,
	}
}

// CreateSession starts a fresh session from the seed dossier.
func (r *SessionRepository) CreateSession() *model.Session {
	s := model.NewSession(r.seed, r.now())
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *SessionRepository) FindSessionByID(id string) (*model.Session, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	r.mu.RLock()
	s, ok := r.sessions[parsed]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.Touch(r.now())
	return s, nil
}

func (r *SessionRepository) DeleteSession(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// DeleteIdle removes sessions unused for longer than ttl and returns how
// many were dropped.
func (r *SessionRepository) DeleteIdle(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.IdleSince(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Sweep runs DeleteIdle every interval until ctx is done. onSweep, when set,
// receives the number of removed sessions after each pass.
func (r *SessionRepository) Sweep(ctx context.Context, ttl, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := r.DeleteIdle(ttl)
			if onSweep != nil {
				onSweep(removed)
			}
		}
	}
}
