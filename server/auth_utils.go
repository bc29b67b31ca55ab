package server

import (
	"net/http"
	"time"

	"github.com/jrsteele09/go-sso-relay/session"
)

// FlowCookieName binds an authorization flow to the browser that began it.
const FlowCookieName = "sso_flow"

func setFlowCookie(w http.ResponseWriter, r *http.Request, nonce string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlowCookieName,
		Value:    nonce,
		Path:     RouteAuthorize,
		HttpOnly: true,
		Secure:   session.IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

func clearFlowCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlowCookieName,
		Value:    "",
		Path:     RouteAuthorize,
		HttpOnly: true,
		Secure:   session.IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func flowNonce(r *http.Request) string {
	cookie, err := r.Cookie(FlowCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// loginURL is where the provider sends the browser after logout.
func (s *Server) loginURL(r *http.Request) string {
	if base := s.config.GetBaseURL(); base != "" {
		return base + RouteLogin
	}
	return getScheme(r) + "://" + r.Host + RouteLogin
}

// badRequest writes the plain-text 400 used for every failed provider call.
func badRequest(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusBadRequest)
}
