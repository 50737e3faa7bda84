package web

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPAHandler serves the built single-page app from staticDir. Paths that do
// not match a file fall back to index.html so client-side routing works.
func SPAHandler(staticDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(staticDir))
	index := filepath.Join(staticDir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(filepath.Clean(r.URL.Path), "/")
		target := filepath.Join(staticDir, rel)

		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}
