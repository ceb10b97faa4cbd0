// Package web holds the non-API HTTP pieces: static client serving,
// JSON 404s and panic recovery.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// NotFound answers unmatched routes. With a static dir, GET and HEAD requests
// outside /api/ get the file at that path or fall back to index.html so the
// client-side router can take over.
func NotFound(staticDir string) http.HandlerFunc {
	var files http.Handler
	if staticDir != "" {
		files = http.FileServer(http.Dir(staticDir))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if files == nil || isAPI(r.URL.Path) || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
			writeJSON(w, http.StatusNotFound, errorBody{Message: "Not found"})
			return
		}

		if fileExists(staticDir, r.URL.Path) {
			files.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	}
}

func isAPI(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

func fileExists(dir, urlPath string) bool {
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean)))
	return err == nil && !info.IsDir()
}

// Recoverer turns a handler panic into a JSON 500.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.ErrorContext(r.Context(), "panic in handler", "panic", rec, "path", r.URL.Path)
				writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Internal server error"})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
