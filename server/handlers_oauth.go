package server

import (
	"net/http"

	"github.com/jrsteele09/go-sso-relay/internal/errors"
	"github.com/jrsteele09/go-sso-relay/provider"
	"github.com/rs/zerolog/hlog"
)

// ProfileHandler fetches userinfo with the session's access token. Without
// one the browser is sent back to the start page.
func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := currentSession(r)
		if !sess.Authenticated() {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		info, err := s.idp.UserInfo(r.Context(), sess.AccessToken)
		if err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("Userinfo request failed")
			badRequest(w, "Failed to fetch user info: "+provider.UpstreamDetail(err))
			return
		}

		s.render(w, r, "profile.html", map[string]interface{}{
			"Title":         "Profile",
			"Authenticated": true,
			"Fields":        info.Fields(),
		})
	}
}

// RefreshHandler trades the session's refresh token for a new token set and
// reports the outcome. Token values are never rendered.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := hlog.FromRequest(r)
		sess := currentSession(r)

		data := map[string]interface{}{
			"Title":         "Refresh",
			"Authenticated": sess.Authenticated(),
		}

		if sess.RefreshToken == "" {
			data["Message"] = "Token refresh failed: " + errors.ErrNoRefreshToken.Error()
			s.render(w, r, "refresh.html", data)
			return
		}

		token, err := s.idp.Refresh(r.Context(), sess.RefreshToken)
		if err != nil {
			logger.Warn().Err(err).Msg("Token refresh failed")
			data["Message"] = "Token refresh failed"
			data["Detail"] = provider.UpstreamDetail(err)
			s.render(w, r, "refresh.html", data)
			return
		}

		idToken := sess.IDToken
		if token.IDToken != "" {
			idToken = token.IDToken
			sess.Subject = token.Subject
		}
		sess.SetTokens(token.AccessToken, token.RefreshToken, idToken, token.Expiry)

		if err := s.sessions.Save(w, r, sess); err != nil {
			logger.Error().Err(err).Msg("Failed to save session")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		data["Success"] = true
		data["Authenticated"] = true
		s.render(w, r, "refresh.html", data)
	}
}

// LogoutHandler drops the local session and hands the browser to the
// provider's logout endpoint, which returns it to the login page.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := currentSession(r)
		if err := s.sessions.Destroy(w, r, sess); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("Failed to delete session")
		}
		http.Redirect(w, r, s.idp.LogoutURL(s.loginURL(r)), http.StatusFound)
	}
}
