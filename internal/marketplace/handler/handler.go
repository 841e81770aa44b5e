package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"agriai/internal/marketplace/models"
	"agriai/pkg/platform/httputil"
	"agriai/pkg/requestcontext"
)

// Service defines the marketplace operations used by the handler.
type Service interface {
	RegisterSeller(ctx context.Context, in models.RegisterSeller) (*models.SellerProfile, error)
	ListSellers(ctx context.Context) ([]*models.SellerProfile, error)
	RecordInterest(ctx context.Context, in models.BuyerInterest) (*models.Notification, error)
	ListNotifications(ctx context.Context, sellerID string) ([]*models.Notification, error)
}

// Handler wires seller and notification endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts marketplace endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/sellers", h.HandleListSellers)
	r.Post("/api/sellers", h.HandleRegisterSeller)
	r.Post("/api/buyer-interest", h.HandleBuyerInterest)
	r.Get("/api/notifications", h.HandleListNotifications)
}

// HandleListSellers handles GET /api/sellers.
func (h *Handler) HandleListSellers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sellers, err := h.service.ListSellers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list sellers",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSellers(sellers))
}

// HandleRegisterSeller handles POST /api/sellers.
func (h *Handler) HandleRegisterSeller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterSellerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	profile, err := h.service.RegisterSeller(ctx, req.Model())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to register seller",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSeller(profile))
}

// HandleBuyerInterest handles POST /api/buyer-interest.
func (h *Handler) HandleBuyerInterest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[BuyerInterestRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	n, err := h.service.RecordInterest(ctx, req.Model())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to record buyer interest",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromNotification(n))
}

// HandleListNotifications handles GET /api/notifications?seller_id=.
func (h *Handler) HandleListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := h.service.ListNotifications(ctx, r.URL.Query().Get("seller_id"))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notifications",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromNotifications(items))
}
