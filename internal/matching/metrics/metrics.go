package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the matching engine.
type Metrics struct {
	// Buyer x seller x offer triples examined per request
	Candidates prometheus.Histogram

	// Matches returned per request
	Matches prometheus.Histogram

	MatchLatency prometheus.Histogram
}

// New registers the matching metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Candidates: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "agriai_matching_candidates",
			Help:    "Buyer, seller and offer combinations examined per match request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		Matches: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "agriai_matching_results",
			Help:    "Matches returned per match request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		MatchLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "agriai_matching_duration_seconds",
			Help:    "Duration of a match computation",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

// ObserveRun records one match computation.
func (m *Metrics) ObserveRun(candidates, matches int, d time.Duration) {
	if m != nil {
		m.Candidates.Observe(float64(candidates))
		m.Matches.Observe(float64(matches))
		m.MatchLatency.Observe(d.Seconds())
	}
}
