package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts advisory lookups.
type Metrics struct {
	// Lookups by kind and how they resolved, for example
	// ("fertilizer", "default") or ("cultivation", "crop_specific").
	Lookups *prometheus.CounterVec
}

// New registers the advisory metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Lookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "agriai_advisory_lookups_total",
			Help: "Advisory lookups by kind and resolution",
		}, []string{"kind", "resolution"}),
	}
}

// IncrementLookup records one lookup.
func (m *Metrics) IncrementLookup(kind, resolution string) {
	if m != nil {
		m.Lookups.WithLabelValues(kind, resolution).Inc()
	}
}
