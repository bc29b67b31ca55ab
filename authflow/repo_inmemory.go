package authflow

import (
	"context"
	"sync"
	"time"

	"github.com/jrsteele09/go-sso-relay/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo interface.
// Entries older than ttl are treated as absent.
type InMemoryRepo struct {
	mu    sync.RWMutex
	flows map[string]*FlowState
	ttl   time.Duration
	now   func() time.Time
}

var _ Repo = (*InMemoryRepo)(nil)

// NewInMemoryRepo creates a new in-memory auth flow state repository
func NewInMemoryRepo(ttl time.Duration, now func() time.Time) *InMemoryRepo {
	if now == nil {
		now = time.Now
	}
	return &InMemoryRepo{
		flows: make(map[string]*FlowState),
		ttl:   ttl,
		now:   now,
	}
}

// Upsert stores or updates an auth flow state
func (r *InMemoryRepo) Upsert(nonce string, flow *FlowState) error {
	if nonce == "" {
		return errors.New("nonce cannot be empty")
	}
	if flow == nil {
		return errors.New("flow cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Copy so callers cannot mutate stored state
	stored := *flow
	r.flows[nonce] = &stored
	return nil
}

// Get retrieves an auth flow state by nonce
func (r *InMemoryRepo) Get(nonce string) (*FlowState, error) {
	if nonce == "" {
		return nil, errors.New("nonce cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	flow, exists := r.flows[nonce]
	if !exists || r.expired(flow) {
		return nil, errors.ErrFlowNotFound
	}

	copied := *flow
	return &copied, nil
}

// Delete removes an auth flow state
func (r *InMemoryRepo) Delete(nonce string) error {
	if nonce == "" {
		return errors.New("nonce cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.flows, nonce)
	return nil
}

// Consume retrieves and removes an auth flow state atomically
func (r *InMemoryRepo) Consume(nonce string) (*FlowState, error) {
	if nonce == "" {
		return nil, errors.New("nonce cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	flow, exists := r.flows[nonce]
	if !exists {
		return nil, errors.ErrFlowNotFound
	}
	delete(r.flows, nonce)
	if r.expired(flow) {
		return nil, errors.ErrFlowNotFound
	}
	return flow, nil
}

// DeleteExpired drops flows that were started but never completed
func (r *InMemoryRepo) DeleteExpired(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for nonce, flow := range r.flows {
		if r.expired(flow) {
			delete(r.flows, nonce)
			removed++
		}
	}
	return removed, nil
}

func (r *InMemoryRepo) expired(flow *FlowState) bool {
	return !r.now().Before(flow.CreatedAt.Add(r.ttl))
}
