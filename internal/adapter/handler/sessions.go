package handler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/services"
)

// SessionRegistry hands each browser tab its own seating session. Every
// access goes through With, so a session only ever has one writer. The
// registry lock only guards the index; each session has its own lock.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	now      func() time.Time
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *services.Session
	lastSeen time.Time
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*sessionEntry),
		now:      time.Now,
	}
}

func (r *SessionRegistry) Add(session *services.Session) string {
	id := uuid.NewString()

	r.mu.Lock()
	r.sessions[id] = &sessionEntry{session: session, lastSeen: r.now()}
	r.mu.Unlock()

	return id
}

func (r *SessionRegistry) With(id string, fn func(*services.Session) error) error {
	r.mu.Lock()
	entry, ok := r.sessions[id]
	if ok {
		entry.lastSeen = r.now()
	}
	r.mu.Unlock()

	if !ok {
		return domain.NotFoundf("session %s", id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.session)
}

func (r *SessionRegistry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// EvictIdle drops every session not accessed within ttl and reports how
// many were dropped.
func (r *SessionRegistry) EvictIdle(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, entry := range r.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// RunCleanup evicts idle sessions until ctx is cancelled.
func (r *SessionRegistry) RunCleanup(ctx context.Context, ttl time.Duration, logger *slog.Logger) {
	interval := ttl / 2
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("session cleanup started", "ttl", ttl, "interval", interval)

	for {
		select {
		case <-ctx.Done():
			logger.Info("session cleanup stopped")
			return
		case <-ticker.C:
			if n := r.EvictIdle(ttl); n > 0 {
				logger.Info("idle sessions evicted", "count", n, "remaining", r.Len())
			}
		}
	}
}
