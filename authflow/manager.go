package authflow

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-sso-relay/internal/errors"
	"golang.org/x/oauth2"
)

// Flow is a started authorization: State goes to the provider, Nonce goes to
// the browser's flow cookie.
type Flow struct {
	State        string
	Nonce        string
	CodeVerifier string
}

// Manager starts and completes authorization code flows. A flow completes at
// most once, only with a valid state, and only in the browser that began it.
type Manager struct {
	signer *StateSigner
	repo   Repo
	pkce   bool
}

func NewManager(signer *StateSigner, repo Repo, pkce bool) *Manager {
	return &Manager{
		signer: signer,
		repo:   repo,
		pkce:   pkce,
	}
}

func (m *Manager) Begin() (*Flow, error) {
	flow := &Flow{Nonce: uuid.NewString()}
	if m.pkce {
		flow.CodeVerifier = oauth2.GenerateVerifier()
	}

	state, err := m.signer.Sign(flow.Nonce)
	if err != nil {
		return nil, errors.Wrapf(err, "[authflow Begin] failed to sign state")
	}
	flow.State = state

	err = m.repo.Upsert(flow.Nonce, &FlowState{
		Nonce:        flow.Nonce,
		CodeVerifier: flow.CodeVerifier,
		CreatedAt:    m.signer.now(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "[authflow Begin] failed to store flow")
	}
	return flow, nil
}

// Complete validates the callback state against the nonce bound to the
// browser and consumes the stored flow.
func (m *Manager) Complete(state, boundNonce string) (*FlowState, error) {
	if state == "" {
		return nil, errors.Wrapf(errors.ErrInvalidState, "missing state parameter")
	}
	nonce, err := m.signer.Verify(state)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(nonce), []byte(boundNonce)) != 1 {
		return nil, errors.Wrapf(errors.ErrInvalidState, "state was not issued to this browser")
	}

	flow, err := m.repo.Consume(nonce)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidState, "%v", err)
	}
	return flow, nil
}

// TTL is how long a begun flow stays valid.
func (m *Manager) TTL() time.Duration {
	return m.signer.ttl
}
