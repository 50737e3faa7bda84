package generate

import (
	"context"
	"errors"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/velaris/seoforge/internal/auth"
	"github.com/velaris/seoforge/internal/models"
	"github.com/velaris/seoforge/internal/web"
)

// ContentWriter persists generated records.
type ContentWriter interface {
	Insert(ctx context.Context, doc *models.SEOContent) (string, error)
}

// Handler runs the generation pipeline: prompt -> provider -> clean ->
// parse -> persist -> raw provider response back to the caller.
type Handler struct {
	store    ContentWriter
	client   *Client
	validate *validator.Validate
}

func NewHandler(store ContentWriter, client *Client) *Handler {
	return &Handler{store: store, client: client, validate: validator.New()}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Keyword = strings.TrimSpace(req.Keyword)
	req.URLs = strings.TrimSpace(req.URLs)
	if err := h.validate.Struct(req); err != nil {
		web.Error(w, http.StatusBadRequest, "Keyword is required")
		return
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = BuildPrompt(req.Keyword, req.URLs, req.Feature)
	}

	decoded, raw, err := h.client.Generate(r.Context(), prompt)
	if err != nil {
		var upstream *UpstreamError
		switch {
		case errors.Is(err, ErrNoAPIKey):
			web.Error(w, http.StatusInternalServerError, "Gemini API key not configured")
		case errors.As(err, &upstream):
			log.Error().Int("status", upstream.Status).Msg("gemini upstream error")
			web.Error(w, upstream.Status, "Gemini API error: "+upstream.Body)
		default:
			log.Error().Err(err).Msg("gemini call failed")
			web.Error(w, http.StatusInternalServerError, "Failed to get response from Gemini API")
		}
		return
	}

	// Malformed provider output degrades to a stored fallback object;
	// it never fails the request.
	cleaned := StripFences(decoded.FirstText())
	parsed := ParseContent(cleaned)
	serialized, err := json.Marshal(parsed)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "Failed to serialize generated content")
		return
	}

	doc := &models.SEOContent{
		UserID:           sess.UserID,
		Keyword:          req.Keyword,
		URLs:             req.URLs,
		GeneratedContent: string(serialized),
	}
	if _, err := h.store.Insert(r.Context(), doc); err != nil {
		log.Error().Err(err).Msg("content insert failed")
		web.Error(w, http.StatusInternalServerError, "Failed to save generated content")
		return
	}

	log.Info().Str("keyword", req.Keyword).Str("user_id", sess.UserID).Msg("content generated")

	// The caller gets the raw provider payload, not the stored object.
	web.Raw(w, http.StatusOK, raw)
}
