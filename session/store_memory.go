package session

import (
	"context"
	"sync"
	"time"

	"github.com/jrsteele09/go-sso-relay/internal/errors"
)

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore is a thread-safe in-memory implementation of the Store interface
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	now      Clock
}

var (
	_ Store   = (*MemoryStore)(nil)
	_ Expirer = (*MemoryStore)(nil)
)

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore(opts ...StoreOption) *MemoryStore {
	o := newStoreOptions(opts)
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		now:      o.clock,
	}
}

// Upsert creates or updates a session
func (r *MemoryStore) Upsert(_ context.Context, session Session, ttl time.Duration) error {
	if session.ID == "" {
		return errors.New("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = memoryEntry{
		session:   session,
		expiresAt: r.now().Add(ttl),
	}
	return nil
}

// Get retrieves a session by ID
func (r *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, errors.New("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.sessions[id]
	if !ok || !r.now().Before(entry.expiresAt) {
		return Session{}, errors.ErrSessionNotFound
	}
	return entry.session, nil
}

// Delete removes a session
func (r *MemoryStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return errors.New("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// DeleteExpired removes every session whose TTL has passed
func (r *MemoryStore) DeleteExpired(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, entry := range r.sessions {
		if !now.Before(entry.expiresAt) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *MemoryStore) Close() error {
	return nil
}
