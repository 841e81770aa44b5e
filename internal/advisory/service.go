// Package advisory serves the table-driven farming advice: crop
// recommendations, fertilizer lists, cultivation guides and sample imagery.
package advisory

import (
	"context"
	"log/slog"
	"slices"

	"agriai/internal/advisory/metrics"
	"agriai/internal/crop"
	"agriai/internal/cultivation"
	"agriai/internal/fertilizer"
)

const (
	resolutionMatched  = "matched"
	resolutionDefault  = "default"
	resolutionFallback = "fallback"
	resolutionSpecific = "crop_specific"
	resolutionGeneric  = "generic"
)

// Service fronts the pure lookup packages.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures the advisory service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(opts ...Option) *Service {
	s := &Service{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) RecommendCrops(ctx context.Context, in crop.Input) crop.Recommendation {
	rec := crop.Recommend(in)
	resolution := resolutionMatched
	if isFallback(rec) {
		resolution = resolutionFallback
		s.logger.DebugContext(ctx, "no crop candidate scored positive, using fallback list")
	}
	s.metrics.IncrementLookup("crop", resolution)
	return rec
}

func (s *Service) RecommendFertilizers(ctx context.Context, cropName, disease string) fertilizer.Recommendation {
	rec := fertilizer.Recommend(cropName, disease)
	resolution := resolutionMatched
	if !fertilizer.KnownCrop(cropName) {
		resolution = resolutionDefault
	}
	s.metrics.IncrementLookup("fertilizer", resolution)
	return rec
}

func (s *Service) CultivationSteps(ctx context.Context, cropKey string) []cultivation.Step {
	resolution := resolutionGeneric
	if cultivation.HasOverrides(cropKey) {
		resolution = resolutionSpecific
	}
	s.metrics.IncrementLookup("cultivation", resolution)
	return cultivation.Steps(cropKey)
}

func (s *Service) SampleImages(ctx context.Context, feature string) []string {
	urls, known := SampleImages(feature)
	resolution := resolutionMatched
	if !known {
		resolution = resolutionDefault
	}
	s.metrics.IncrementLookup("sample_images", resolution)
	return urls
}

func isFallback(rec crop.Recommendation) bool {
	keys := make([]string, 0, len(rec.Crops))
	for _, c := range rec.Crops {
		keys = append(keys, c.Key)
	}
	return slices.Equal(keys, crop.Fallback())
}
