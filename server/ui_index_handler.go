package server

import (
	"net/http"
)

// WelcomeHandler renders the landing page
func (s *Server) WelcomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := currentSession(r)
		s.render(w, r, "welcome.html", map[string]interface{}{
			"Title":         "Welcome",
			"Authenticated": sess.Authenticated(),
			"Subject":       sess.Subject,
		})
	}
}
