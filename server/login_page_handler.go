package server

import (
	"net/http"
)

// LoginPageHandler renders the sign-in page.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, "login.html", map[string]interface{}{
			"Title": "Sign in",
		})
	}
}
