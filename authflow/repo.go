package authflow

import (
	"context"
	"time"
)

// FlowState is what the relay remembers between redirecting the browser to
// the provider and receiving the callback.
type FlowState struct {
	Nonce        string
	CodeVerifier string
	CreatedAt    time.Time
}

type Repo interface {
	Upsert(nonce string, flow *FlowState) error
	Get(nonce string) (*FlowState, error)
	Delete(nonce string) error
	// Consume returns the flow and removes it in one step
	Consume(nonce string) (*FlowState, error)
	DeleteExpired(ctx context.Context) (int, error)
}
