package server

import (
	"net/http"

	"github.com/jrsteele09/go-sso-relay/session"
	"github.com/rs/zerolog/hlog"
)

// SessionMiddleware loads the browser's session into the request context and
// slides its idle TTL. A store failure is logged and the request continues.
func (s *Server) SessionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.sessions.Load(r)
		if err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("Session load failed")
		}
		if err := s.sessions.Touch(w, r, sess); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("Session touch failed")
		}
		next(w, r.WithContext(session.NewContext(r.Context(), sess)))
	}
}

// currentSession never returns nil inside SessionMiddleware.
func currentSession(r *http.Request) *session.Session {
	if sess := session.FromContext(r.Context()); sess != nil {
		return sess
	}
	return &session.Session{}
}
