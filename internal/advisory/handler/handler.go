package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"agriai/internal/crop"
	"agriai/internal/cultivation"
	"agriai/internal/fertilizer"
	"agriai/pkg/platform/httputil"
	"agriai/pkg/requestcontext"
)

// Service defines the advisory lookups the handler serves.
type Service interface {
	RecommendCrops(ctx context.Context, in crop.Input) crop.Recommendation
	RecommendFertilizers(ctx context.Context, cropName, disease string) fertilizer.Recommendation
	CultivationSteps(ctx context.Context, cropKey string) []cultivation.Step
	SampleImages(ctx context.Context, feature string) []string
}

// Handler wires advisory endpoints to the advisory service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an advisory handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts advisory endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/predict-crop", h.HandlePredictCrop)
	r.Post("/api/fertilizer", h.HandleFertilizer)
	r.Get("/api/cultivation/{crop_key}", h.HandleCultivation)
	r.Get("/api/sample-images", h.HandleSampleImages)
}

// HandlePredictCrop handles POST /api/predict-crop.
func (h *Handler) HandlePredictCrop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PredictCropRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec := h.service.RecommendCrops(ctx, req.Input())

	h.logger.InfoContext(ctx, "crops recommended",
		"request_id", requestID,
		"season", req.Season,
		"water", req.WaterAvailability,
		"count", len(rec.Crops),
	)
	httputil.WriteJSON(w, http.StatusOK, rec)
}

// HandleFertilizer handles POST /api/fertilizer.
func (h *Handler) HandleFertilizer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FertilizerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec := h.service.RecommendFertilizers(ctx, req.Crop, req.DiseaseDetected)
	httputil.WriteJSON(w, http.StatusOK, rec)
}

// HandleCultivation handles GET /api/cultivation/{crop_key}.
func (h *Handler) HandleCultivation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cropKey := chi.URLParam(r, "crop_key")

	if err := validateCropKey(cropKey); err != nil {
		h.logger.WarnContext(ctx, "invalid crop key",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, CultivationResponse{
		Crop:  cropKey,
		Steps: h.service.CultivationSteps(ctx, cropKey),
	})
}

// HandleSampleImages handles GET /api/sample-images?feature=.
func (h *Handler) HandleSampleImages(w http.ResponseWriter, r *http.Request) {
	feature := r.URL.Query().Get("feature")
	httputil.WriteJSON(w, http.StatusOK, h.service.SampleImages(r.Context(), feature))
}
