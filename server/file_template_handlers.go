package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/hlog"
)

//go:embed templates/*
var templateFiles embed.FS

// ParseTemplates parses every page and the shared layout partials.
func ParseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(mustSub(templateFiles, "templates"), "*.html")
}

// render executes the named page into a buffer first so a template error can
// still produce a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["AppName"] = s.config.GetAppName()

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("template", name).Msg("Template render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
