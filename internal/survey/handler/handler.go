package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"agriai/internal/survey"
	dErrors "agriai/pkg/domain-errors"
	"agriai/pkg/platform/httputil"
	"agriai/pkg/platform/validation"
	"agriai/pkg/requestcontext"
)

// Service defines the survey operations used by the handler.
type Service interface {
	Submit(ctx context.Context, in survey.Submission) (*survey.Survey, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/survey", h.HandleSubmit)
}

const maxTimestampLength = 64

// SubmitRequest is the body of POST /api/survey.
type SubmitRequest struct {
	Role      string         `json:"role" validate:"max=64"`
	Responses map[string]any `json:"responses"`
	// Timestamp is reported by the client either as a string or as epoch
	// milliseconds.
	Timestamp any `json:"timestamp"`

	timestamp string
}

// Validate implements httputil.Validatable.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Responses) > validation.MaxSurveyResponses {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("responses exceeds maximum of %d", validation.MaxSurveyResponses))
	}
	switch ts := r.Timestamp.(type) {
	case nil:
	case string:
		r.timestamp = strings.TrimSpace(ts)
	case float64:
		r.timestamp = strconv.FormatFloat(ts, 'f', -1, 64)
	default:
		return dErrors.New(dErrors.CodeValidation, "timestamp must be a string or a number")
	}
	if len(r.timestamp) > maxTimestampLength {
		return dErrors.New(dErrors.CodeValidation, "timestamp is too long")
	}
	return nil
}

// SubmitResponse acknowledges a stored survey.
type SubmitResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// HandleSubmit handles POST /api/survey.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	sv, err := h.service.Submit(ctx, survey.Submission{
		Role:      req.Role,
		Responses: req.Responses,
		Timestamp: req.timestamp,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to submit survey",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SubmitResponse{OK: true, ID: sv.ID.String()})
}
