package server

import (
	"fmt"
	"net/http"

	"github.com/jrsteele09/go-sso-relay/provider"
	"github.com/rs/zerolog/hlog"
)

// AuthorizeHandler serves both legs of the authorization code flow: without a
// code it starts a flow and redirects to the provider, with one it completes
// the flow and exchanges the code for tokens.
func (s *Server) AuthorizeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if errorParam := query.Get("error"); errorParam != "" {
			clearFlowCookie(w, r)
			badRequest(w, fmt.Sprintf("Authorization failed: %s - %s", errorParam, query.Get("error_description")))
			return
		}

		code := query.Get("code")
		if code == "" {
			s.beginAuthorization(w, r)
			return
		}
		s.completeAuthorization(w, r, code, query.Get("state"))
	}
}

func (s *Server) beginAuthorization(w http.ResponseWriter, r *http.Request) {
	flow, err := s.flows.Begin()
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to start authorization flow")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setFlowCookie(w, r, flow.Nonce, s.flows.TTL())
	http.Redirect(w, r, s.idp.AuthCodeURL(flow.State, flow.CodeVerifier), http.StatusFound)
}

func (s *Server) completeAuthorization(w http.ResponseWriter, r *http.Request, code, state string) {
	logger := hlog.FromRequest(r)

	flow, err := s.flows.Complete(state, flowNonce(r))
	if err != nil {
		logger.Warn().Err(err).Msg("Rejected authorization callback")
		clearFlowCookie(w, r)
		badRequest(w, "Invalid state parameter")
		return
	}

	token, err := s.idp.Exchange(r.Context(), code, flow.CodeVerifier)
	if err != nil {
		logger.Warn().Err(err).Msg("Token exchange failed")
		clearFlowCookie(w, r)
		badRequest(w, "Token exchange failed: "+provider.UpstreamDetail(err))
		return
	}

	sess := currentSession(r)
	if err := s.sessions.Regenerate(r.Context(), sess); err != nil {
		logger.Error().Err(err).Msg("Failed to rotate session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	sess.SetTokens(token.AccessToken, token.RefreshToken, token.IDToken, token.Expiry)
	sess.Subject = token.Subject

	if err := s.sessions.Save(w, r, sess); err != nil {
		logger.Error().Err(err).Msg("Failed to save session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	clearFlowCookie(w, r)
	logger.Info().Str("session", shortID(sess.ID)).Str("sub", sess.Subject).Msg("Login complete")
	http.Redirect(w, r, RouteWelcome, http.StatusSeeOther)
}

// shortID keeps full session IDs out of logs.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
