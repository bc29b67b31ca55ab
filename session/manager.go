package session

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-sso-relay/internal/errors"
)

// Manager ties a Store to the browser cookie that names the session.
type Manager struct {
	store      Store
	cookieName string
	maxAge     time.Duration
}

func NewManager(store Store, cookieName string, maxAge time.Duration) *Manager {
	return &Manager{
		store:      store,
		cookieName: cookieName,
		maxAge:     maxAge,
	}
}

// Load returns the session named by the request cookie. A missing cookie or
// an unknown/expired ID yields a fresh, unsaved session (empty ID).
func (m *Manager) Load(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return m.fresh(), nil
	}

	s, err := m.store.Get(r.Context(), cookie.Value)
	if errors.Is(err, errors.ErrSessionNotFound) {
		return m.fresh(), nil
	}
	if err != nil {
		return m.fresh(), errors.Wrapf(err, "[Manager Load] failed to load session")
	}
	return &s, nil
}

// Save persists s, assigning an ID if it has none, and (re)sets the cookie.
// Every save slides the server-side TTL forward.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	s.UpdatedAt = time.Now()

	if err := m.store.Upsert(r.Context(), *s, m.maxAge); err != nil {
		return errors.Wrapf(err, "[Manager Save] failed to store session")
	}
	http.SetCookie(w, m.cookie(r, s.ID, 0))
	return nil
}

// Touch re-saves an authenticated session once half of maxAge has passed
// since its last save, so the server-side TTL is an idle timeout.
func (m *Manager) Touch(w http.ResponseWriter, r *http.Request, s *Session) error {
	if s.ID == "" || !s.Authenticated() {
		return nil
	}
	if time.Since(s.UpdatedAt) < m.maxAge/2 {
		return nil
	}
	return m.Save(w, r, s)
}

// Regenerate drops the stored copy of s and clears its ID so the next Save
// issues a new one. Called on login to defeat session fixation.
func (m *Manager) Regenerate(ctx context.Context, s *Session) error {
	if s.ID != "" {
		if err := m.store.Delete(ctx, s.ID); err != nil {
			return errors.Wrapf(err, "[Manager Regenerate] failed to delete old session")
		}
	}
	s.ID = ""
	s.CreatedAt = time.Now()
	return nil
}

// Destroy deletes s from the store, expires the cookie and zeroes s.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request, s *Session) error {
	var err error
	if s.ID != "" {
		err = m.store.Delete(r.Context(), s.ID)
	}
	http.SetCookie(w, m.cookie(r, "", -1))
	*s = Session{}
	if err != nil {
		return errors.Wrapf(err, "[Manager Destroy] failed to delete session")
	}
	return nil
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// cookie builds a browser-session cookie (no Max-Age) unless maxAge is negative.
func (m *Manager) cookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}

func (m *Manager) fresh() *Session {
	return &Session{CreatedAt: time.Now()}
}

// IsSecureRequest reports whether the request arrived over https, directly or
// behind a proxy that sets X-Forwarded-Proto.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return ForwardedProto(r) == "https"
}

// ForwardedProto returns the client-facing scheme from X-Forwarded-Proto. A
// proxy chain appends to the header, so the first element is the one the
// browser used.
func ForwardedProto(r *http.Request) string {
	proto, _, _ := strings.Cut(r.Header.Get("X-Forwarded-Proto"), ",")
	return strings.ToLower(strings.TrimSpace(proto))
}
