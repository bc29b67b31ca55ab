package session

import (
	"context"
	"time"
)

// Session is the per-browser state held server-side. The browser only ever
// sees the opaque ID in a cookie.
type Session struct {
	ID string `json:"id"`

	// Tokens are opaque blobs issued by the provider
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`

	// Subject is only set when an ID token was verified
	Subject     string    `json:"sub,omitempty"`
	TokenExpiry time.Time `json:"token_expiry,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Authenticated reports whether the session holds an access token.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != ""
}

// SetTokens overwrites every token held by the session. An empty refresh
// token clears the previous one.
func (s *Session) SetTokens(accessToken, refreshToken, idToken string, expiry time.Time) {
	s.AccessToken = accessToken
	s.RefreshToken = refreshToken
	s.IDToken = idToken
	s.TokenExpiry = expiry
}

// Store persists sessions by ID. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Upsert(ctx context.Context, session Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	Close() error
}

// Expirer is implemented by stores that need expired entries swept explicitly.
type Expirer interface {
	DeleteExpired(ctx context.Context) (int, error)
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session loaded for the request, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}
