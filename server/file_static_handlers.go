package server

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
)

//go:embed static/*
var staticFiles embed.FS

var staticFS = mustSub(staticFiles, "static")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic("Failed to create sub filesystem: " + err.Error())
	}
	return sub
}

// serveStatic serves one embedded asset from dir, named by the {file} path
// value. Content type and conditional requests are left to ServeFileFS.
func (s *Server) serveStatic(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := path.Join(dir, path.Base(r.PathValue("file")))
		if info, err := fs.Stat(staticFS, name); err != nil || info.IsDir() {
			if err != nil {
				logError(r, name, err)
			}
			http.NotFound(w, r)
			return
		}
		http.ServeFileFS(w, r, staticFS, name)
	}
}
