package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/danupratama/portfolio-backend/errs"
)

// serveUpload serves a previously uploaded file by name. Path separators and
// parent references are rejected before touching the filesystem.
func (h uploadHandler) serveUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "filename")
		if filename == "" ||
			strings.Contains(filename, "..") ||
			strings.ContainsAny(filename, `/\`) {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid filename"))
			return
		}

		path := filepath.Join(h.uploadDir, filename)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			h.responder.WriteError(w, errs.NewNotFoundError("file not found"))
			return
		}

		http.ServeFile(w, r, path)
	}
}

// spaHandler serves the prebuilt frontend bundle, falling back to index.html
// for client-side routes. Unknown /api paths still get a JSON 404.
func spaHandler(staticDir string, responder Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			responder.WriteError(w, errs.NewNotFoundError("route not found"))
			return
		}

		if staticDir == "" {
			responder.WriteError(w, errs.NewNotFoundError("not found"))
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			http.ServeFile(w, r, requested)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			responder.WriteError(w, errs.NewNotFoundError("not found"))
			return
		}
		http.ServeFile(w, r, index)
	}
}
