package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteIndex     = "/{$}"
	RouteLogin     = "/login"
	RouteAuthorize = "/authorize"
	RouteWelcome   = "/welcome"
	RouteIndexHTML = "/index.html"
	RouteProfile   = "/profile"
	RouteRefresh   = "/refresh"
	RouteLogout    = "/logout"
	RouteHealth    = "/healthz"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
)
