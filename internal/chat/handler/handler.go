package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"saarthi/internal/chat"
	dErrors "saarthi/pkg/domain-errors"
	"saarthi/pkg/platform/httputil"
	"saarthi/pkg/requestcontext"
)

// maxMessageLength bounds the accepted message size; anything longer is not a
// plausible self-description and only inflates model cost.
const maxMessageLength = 4000

// Service defines the chat pipeline operation the handler delegates to.
type Service interface {
	Handle(ctx context.Context, req chat.Request) chat.Result
}

// Handler wires the chat endpoint to the pipeline service.
type Handler struct {
	service    Service
	logger     *slog.Logger
	production bool
}

// New constructs a chat handler. production controls whether 500 responses
// include debug detail.
func New(service Service, logger *slog.Logger, production bool) *Handler {
	return &Handler{service: service, logger: logger, production: production}
}

// Register mounts the chat endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	var req chat.Request
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := validateRequest(req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.handle(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "chat request failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteInternalError(w, err, !h.production)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// handle shields the response path from panics in the pipeline so the client
// always gets a well-formed 500 instead of a dropped connection.
func (h *Handler) handle(ctx context.Context, req chat.Request) (result chat.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = dErrors.New(dErrors.CodeInternal, "chat pipeline panic")
		}
	}()
	return h.service.Handle(ctx, req), nil
}

func validateRequest(req chat.Request) error {
	if !govalidator.StringLength(req.Message, "1", strconv.Itoa(maxMessageLength)) {
		if req.Message == "" {
			return dErrors.New(dErrors.CodeBadRequest, "message is required")
		}
		return dErrors.New(dErrors.CodeBadRequest, "message is too long")
	}
	return nil
}
