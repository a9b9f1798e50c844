package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"saarthi/internal/scheme"
	dErrors "saarthi/pkg/domain-errors"
	"saarthi/pkg/platform/httputil"
)

// Catalog is the read-only scheme lookup the handler needs.
type Catalog interface {
	All() []scheme.SchemeDefinition
	Get(id string) (scheme.SchemeDefinition, bool)
}

// Handler serves the health check and scheme browsing endpoints.
type Handler struct {
	catalog Catalog
	logger  *slog.Logger
}

// New constructs a scheme handler.
func New(catalog Catalog, logger *slog.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// Register mounts the endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/health", h.handleHealth)
	r.Get("/api/schemes", h.handleList)
	r.Get("/api/schemes/{id}", h.handleGet)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Saarthi backend is running",
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"schemes": h.catalog.All(),
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s, ok := h.catalog.Get(id)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "scheme not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"scheme": s})
}
