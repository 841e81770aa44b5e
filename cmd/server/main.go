package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"agriai/internal/advisory"
	advisoryhandler "agriai/internal/advisory/handler"
	advisorymetrics "agriai/internal/advisory/metrics"
	"agriai/internal/delivery"
	deliveryhandler "agriai/internal/delivery/handler"
	"agriai/internal/disease"
	diseasehandler "agriai/internal/disease/handler"
	diseasemetrics "agriai/internal/disease/metrics"
	marketplacehandler "agriai/internal/marketplace/handler"
	marketplacemetrics "agriai/internal/marketplace/metrics"
	marketplaceservice "agriai/internal/marketplace/service"
	notificationstore "agriai/internal/marketplace/store/notification"
	sellerstore "agriai/internal/marketplace/store/seller"
	"agriai/internal/matching"
	matchinghandler "agriai/internal/matching/handler"
	matchingmetrics "agriai/internal/matching/metrics"
	"agriai/internal/platform/config"
	"agriai/internal/platform/httpserver"
	"agriai/internal/platform/logger"
	"agriai/internal/platform/metrics"
	"agriai/internal/survey"
	surveyhandler "agriai/internal/survey/handler"
	httptransport "agriai/internal/transport/http"
)

// main wires configuration, stores, services and handlers, then runs the
// HTTP server until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		log.Error("failed to create upload directory", "dir", cfg.Uploads.Dir, "error", err)
		os.Exit(1)
	}

	reg := prometheus.DefaultRegisterer

	diseaseMetrics := diseasemetrics.New(reg)
	classifier := disease.NewClassifier(
		disease.WithMaxBytes(cfg.Uploads.MaxBytes),
		disease.WithLogger(log),
		disease.WithMetrics(diseaseMetrics),
	)
	marketplace := marketplaceservice.New(sellerstore.New(), notificationstore.New(),
		marketplaceservice.WithLogger(log),
		marketplaceservice.WithMetrics(marketplacemetrics.New(reg)),
	)

	router := httptransport.NewRouter(httptransport.Options{
		Logger:    log,
		Metrics:   metrics.New(reg),
		Gatherer:  prometheus.DefaultGatherer,
		CORS:      cfg.CORS,
		UploadDir: cfg.Uploads.Dir,
	},
		advisoryhandler.New(advisory.New(
			advisory.WithLogger(log),
			advisory.WithMetrics(advisorymetrics.New(reg)),
		), log),
		diseasehandler.New(classifier, diseasehandler.Uploads{
			Dir:               cfg.Uploads.Dir,
			MaxBytes:          cfg.Uploads.MaxBytes,
			AllowedExtensions: cfg.Uploads.AllowedExtensions,
			RateLimit:         cfg.Uploads.RateLimit,
			RateWindow:        cfg.Uploads.RateWindow,
		}, log, diseaseMetrics),
		matchinghandler.New(matching.NewService(
			matching.WithDefaultMaxDistance(cfg.Matching.DefaultMaxDistanceKm),
			matching.WithLogger(log),
			matching.WithMetrics(matchingmetrics.New(reg)),
		), log),
		marketplacehandler.New(marketplace, log),
		surveyhandler.New(survey.NewService(survey.NewInMemoryStore(),
			survey.WithLogger(log),
			survey.WithRegisterer(reg),
		), log),
		deliveryhandler.New(delivery.NewService(delivery.NewSeededStore(), log), log),
	)

	srv := httpserver.New(cfg.Server, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting agriai server", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down agriai server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
