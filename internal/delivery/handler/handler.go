package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"agriai/internal/delivery"
	"agriai/pkg/domain"
	dErrors "agriai/pkg/domain-errors"
	"agriai/pkg/platform/httputil"
	"agriai/pkg/requestcontext"
)

// FallbackHeader is set when a lookup by tracking id found nothing and the
// full list was returned instead.
const FallbackHeader = "X-Tracking-Fallback"

// Service defines the delivery operations used by the handler.
type Service interface {
	Upsert(ctx context.Context, in delivery.Upsert) (*delivery.Record, error)
	Get(ctx context.Context, id domain.TrackingID) (*delivery.Record, error)
	List(ctx context.Context) ([]*delivery.Record, error)
}

// Handler wires delivery endpoints to the delivery service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts delivery endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/delivery", h.HandleGet)
	r.Post("/api/delivery", h.HandleUpsert)
}

// HandleGet handles GET /api/delivery[?tracking_id=]. An unknown tracking
// id returns every record, flagged with FallbackHeader.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	raw := strings.TrimSpace(r.URL.Query().Get("tracking_id"))

	if raw != "" {
		rec, found := h.lookup(ctx, requestID, raw)
		if found {
			httputil.WriteJSON(w, http.StatusOK, FromRecord(rec))
			return
		}
		w.Header().Set(FallbackHeader, "all")
	}

	records, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list deliveries",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRecords(records))
}

func (h *Handler) lookup(ctx context.Context, requestID, raw string) (*delivery.Record, bool) {
	id, err := domain.ParseTrackingID(raw)
	if err != nil {
		h.logger.InfoContext(ctx, "malformed tracking id, returning all deliveries",
			"request_id", requestID,
			"error", err,
		)
		return nil, false
	}
	rec, err := h.service.Get(ctx, id)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to load delivery",
				"request_id", requestID,
				"tracking_id", id,
				"error", err,
			)
		}
		return nil, false
	}
	return rec, true
}

// HandleUpsert handles POST /api/delivery.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpsertRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := h.service.Upsert(ctx, req.Model())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save delivery",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRecord(rec))
}
