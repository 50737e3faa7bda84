// Package server assembles the single shared routing table consumed by the
// process entry point and by tests.
package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/velaris/seoforge/internal/auth"
	"github.com/velaris/seoforge/internal/content"
	"github.com/velaris/seoforge/internal/generate"
	"github.com/velaris/seoforge/internal/middleware"
	"github.com/velaris/seoforge/internal/web"
)

// Deps bundles everything the router dispatches to.
type Deps struct {
	Auth     *auth.Handler
	Content  *content.Handler
	Generate *generate.Handler
	Sessions auth.SessionStore
	Health   http.HandlerFunc

	StaticDir string
}

// New builds the chi router with the full API surface and the SPA fallback.
func New(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Every failure on the API surface carries the JSON envelope.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		web.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	spa := web.SPAHandler(d.StaticDir)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") {
			web.Error(w, http.StatusNotFound, "API endpoint not found")
			return
		}
		spa(w, r)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", d.Auth.Login)
		r.Post("/logout", d.Auth.Logout)
		r.Get("/health", d.Health)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(d.Sessions))
			r.Get("/seo-content", d.Content.List)
			r.Delete("/seo-content/{id}", d.Content.Delete)
			r.Post("/change-password", d.Auth.ChangePassword)
			r.Post("/generate", d.Generate.Generate)
		})
	})

	return r
}
