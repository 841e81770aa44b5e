package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"

	"agriai/internal/disease"
	"agriai/internal/disease/metrics"
	dErrors "agriai/pkg/domain-errors"
	"agriai/pkg/platform/httputil"
	"agriai/pkg/requestcontext"
)

// UploadURLPrefix is where saved uploads are served from.
const UploadURLPrefix = "/static/uploads/"

// multipartMemory is how much of a form is buffered in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

// Classifier labels the image stored at a path.
type Classifier interface {
	PredictFile(path string) disease.Prediction
}

// Uploads configures how images are accepted and stored.
type Uploads struct {
	Dir               string
	MaxBytes          int64
	AllowedExtensions []string
	// RateLimit is the number of uploads allowed per client IP per
	// RateWindow. Zero disables limiting.
	RateLimit  int
	RateWindow time.Duration
}

// Handler serves the image diagnosis endpoint.
type Handler struct {
	classifier Classifier
	uploads    Uploads
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// New constructs a disease handler.
func New(classifier Classifier, uploads Uploads, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		classifier: classifier,
		uploads:    uploads,
		logger:     logger,
		metrics:    metrics,
	}
}

// Register mounts the disease endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	if h.uploads.RateLimit > 0 {
		r = r.With(httprate.Limit(h.uploads.RateLimit, h.uploads.RateWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(h.handleRateLimited),
		))
	}
	r.Post("/api/disease-predict", h.HandlePredict)
}

// HandlePredict handles POST /api/disease-predict. The uploaded file is
// stored under the upload directory for the duration of the request only.
func (h *Handler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	if h.uploads.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.uploads.MaxBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.reject(w, r, classifyFormError(err))
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("image")
	if err != nil {
		h.reject(w, r, rejection{reason: "missing", err: dErrors.New(dErrors.CodeBadRequest, "No image file")})
		return
	}
	defer file.Close()

	if header.Filename == "" || !slices.Contains(h.uploads.AllowedExtensions, extension(header.Filename)) {
		h.reject(w, r, rejection{reason: "extension", err: dErrors.New(dErrors.CodeBadRequest, "Invalid image type")})
		return
	}

	name := secureFilename(strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + header.Filename)
	path := filepath.Join(h.uploads.Dir, name)
	if err := save(path, file); err != nil {
		h.logger.ErrorContext(ctx, "failed to store upload",
			"request_id", requestID,
			"path", path,
			"error", err,
		)
		h.metrics.IncrementRejected("storage")
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store upload"))
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			h.logger.WarnContext(ctx, "failed to remove upload",
				"request_id", requestID,
				"path", path,
				"error", err,
			)
		}
	}()

	pred := h.classifier.PredictFile(path)

	h.logger.InfoContext(ctx, "disease predicted",
		"request_id", requestID,
		"prediction", pred.Prediction,
		"size_bytes", header.Size,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, PredictResponse{
		Prediction:  pred,
		UploadedURL: UploadURLPrefix + name,
	})
}

func (h *Handler) handleRateLimited(w http.ResponseWriter, r *http.Request) {
	h.reject(w, r, rejection{reason: "rate_limited", err: dErrors.New(dErrors.CodeTooManyRequests, "too many uploads, retry later")})
}

type rejection struct {
	reason string
	err    error
}

func classifyFormError(err error) rejection {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return rejection{reason: "too_large", err: dErrors.New(dErrors.CodePayloadTooLarge, "image exceeds upload limit")}
	}
	return rejection{reason: "missing", err: dErrors.New(dErrors.CodeBadRequest, "No image file")}
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, rej rejection) {
	h.logger.InfoContext(r.Context(), "image upload rejected",
		"request_id", requestcontext.RequestID(r.Context()),
		"reason", rej.reason,
	)
	h.metrics.IncrementRejected(rej.reason)
	httputil.WriteError(w, rej.err)
}

func save(path string, src io.Reader) error {
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return err
	}
	return dst.Close()
}
