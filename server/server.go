package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-sso-relay/authflow"
	"github.com/jrsteele09/go-sso-relay/internal/config"
	"github.com/jrsteele09/go-sso-relay/provider"
	"github.com/jrsteele09/go-sso-relay/session"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

// IdentityProvider is the set of provider calls the relay makes.
// *provider.Client implements it.
type IdentityProvider interface {
	AuthCodeURL(state, codeVerifier string) string
	Exchange(ctx context.Context, code, codeVerifier string) (*provider.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*provider.Token, error)
	UserInfo(ctx context.Context, accessToken string) (provider.UserInfo, error)
	LogoutURL(redirect string) string
}

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	handler   http.Handler
	routes    []string
	config    config.Config
	idp       IdentityProvider
	sessions  *session.Manager
	flows     *authflow.Manager
	templates *template.Template
}

func New(config config.Config, idp IdentityProvider, sessions *session.Manager, flows *authflow.Manager) (*Server, error) {
	templates, err := ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse templates: %w", err)
	}

	s := &Server{
		env:       config.GetEnv(),
		mux:       http.NewServeMux(),
		config:    config,
		idp:       idp,
		sessions:  sessions,
		flows:     flows,
		templates: templates,
	}

	s.initRoutes()
	s.logRoutes()

	s.handler = cors.New(cors.Options{
		AllowedOrigins:   config.GetAllowedOrigins(),
		AllowedMethods:   config.GetAllowedMethods(),
		AllowedHeaders:   config.GetAllowedHeaders(),
		AllowCredentials: !allowsAnyOrigin(config.GetAllowedOrigins()),
		MaxAge:           86400,
	}).Handler(s.mux)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// Routes returns the registered patterns in registration order.
func (s *Server) Routes() []string {
	return append([]string(nil), s.routes...)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

const (
	colourRed   = "\033[31m"
	colourGreen = "\033[32m"
	colourGray  = "\033[90m"
	colourReset = "\033[0m"
)

func logRoute(method, path string) {
	log.Info().Msgf("[%-19s] %s", colourMethod(method), path)
}

// colourMethod pads method for the DEV route table. The relay only serves GET.
func colourMethod(method string) string {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if method == http.MethodGet {
		return colourGreen + paddedMethod + colourReset
	}
	return colourGray + paddedMethod + colourReset
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// getScheme is the scheme the browser used, honouring the first
// X-Forwarded-Proto hop.
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := session.ForwardedProto(r); scheme != "" {
		return scheme
	}
	return "http"
}
