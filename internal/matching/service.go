package matching

import (
	"context"
	"log/slog"
	"time"

	"agriai/internal/matching/metrics"
)

// Request is one match computation. A nil MaxDistanceKm uses the
// service's default radius.
type Request struct {
	Buyers        []Buyer
	Sellers       []Seller
	MaxDistanceKm *float64
}

// Service runs Match with a configured default radius and records metrics.
type Service struct {
	defaultMaxDistanceKm float64
	logger               *slog.Logger
	metrics              *metrics.Metrics
}

// Option configures the matching service.
type Option func(*Service)

func WithDefaultMaxDistance(km float64) Option {
	return func(s *Service) {
		if km > 0 {
			s.defaultMaxDistanceKm = km
		}
	}
}

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

func NewService(opts ...Option) *Service {
	s := &Service{
		defaultMaxDistanceKm: DefaultMaxDistanceKm,
		logger:               slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Match(ctx context.Context, req Request) []Result {
	start := time.Now()
	maxDistance := s.defaultMaxDistanceKm
	if req.MaxDistanceKm != nil {
		maxDistance = *req.MaxDistanceKm
	}

	results := Match(req.Buyers, req.Sellers, maxDistance)

	candidates := 0
	for _, seller := range req.Sellers {
		candidates += len(seller.Crops)
	}
	candidates *= len(req.Buyers)
	s.metrics.ObserveRun(candidates, len(results), time.Since(start))
	s.logger.DebugContext(ctx, "match computed",
		"buyers", len(req.Buyers),
		"sellers", len(req.Sellers),
		"max_distance_km", maxDistance,
		"matches", len(results),
	)
	return results
}
