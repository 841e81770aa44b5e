package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"agriai/internal/matching"
	"agriai/pkg/platform/httputil"
	"agriai/pkg/requestcontext"
)

// Service computes buyer and seller matches.
type Service interface {
	Match(ctx context.Context, req matching.Request) []matching.Result
}

// Handler serves the matching calculator.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the matching endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/match", h.HandleMatch)
}

// HandleMatch handles POST /api/match.
func (h *Handler) HandleMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[MatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	matches := h.service.Match(ctx, req.Model())
	if matches == nil {
		matches = []matching.Result{}
	}

	h.logger.InfoContext(ctx, "matches computed",
		"request_id", requestID,
		"buyers", len(req.Buyers),
		"sellers", len(req.Sellers),
		"matches", len(matches),
	)
	httputil.WriteJSON(w, http.StatusOK, MatchResponse{Matches: matches})
}
