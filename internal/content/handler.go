// Package content serves the saved generated-content collection.
package content

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/velaris/seoforge/internal/models"
	"github.com/velaris/seoforge/internal/web"
)

// Store is the persistence surface the handlers need.
type Store interface {
	List(ctx context.Context) ([]models.SEOContent, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List returns all saved records, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("content list failed")
		web.Error(w, http.StatusInternalServerError, "Failed to fetch SEO content")
		return
	}
	if docs == nil {
		docs = []models.SEOContent{}
	}
	web.OK(w, map[string]interface{}{
		"success": true,
		"data":    docs,
	})
}

// Delete removes one record by id. Unknown ids are a 404, and deleting
// twice yields success then not-found.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := h.store.DeleteByID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("content delete failed")
		web.Error(w, http.StatusInternalServerError, "Failed to delete SEO content")
		return
	}
	if !removed {
		web.Error(w, http.StatusNotFound, "SEO content not found")
		return
	}
	web.OK(w, map[string]interface{}{
		"success": true,
		"message": "SEO content deleted successfully",
	})
}
