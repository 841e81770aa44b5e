package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	deliveryhandler "agriai/internal/delivery/handler"
	diseasehandler "agriai/internal/disease/handler"
	"agriai/internal/platform/config"
	"agriai/internal/platform/metrics"
	"agriai/internal/platform/middleware"
	dErrors "agriai/pkg/domain-errors"
	"agriai/pkg/platform/httputil"
)

// Registrar is implemented by every domain handler.
type Registrar interface {
	Register(r chi.Router)
}

// Options carries the router's cross-cutting dependencies.
type Options struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	CORS      config.CORS
	UploadDir string
}

// NewRouter applies the shared middleware chain and mounts the health,
// metrics and static upload routes followed by each domain handler.
func NewRouter(opts Options, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.Latency(opts.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, deliveryhandler.FallbackHeader},
		MaxAge:         opts.CORS.MaxAge,
	}))

	r.Get("/health", handleHealth)
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	if opts.UploadDir != "" {
		files := http.StripPrefix(diseasehandler.UploadURLPrefix, http.FileServer(http.Dir(opts.UploadDir)))
		r.Handle(diseasehandler.UploadURLPrefix+"*", files)
	}

	for _, h := range handlers {
		h.Register(r)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no route for "+r.Method+" "+r.URL.Path))
	})
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
