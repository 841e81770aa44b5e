package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for image classification.
type Metrics struct {
	// Predictions by outcome: a label id, "unknown" or "error"
	Predictions *prometheus.CounterVec

	// Time spent decoding and scanning an image
	PredictLatency prometheus.Histogram

	// Upload rejections by reason
	UploadsRejected *prometheus.CounterVec
}

// New registers the disease metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Predictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agriai_disease_predictions_total",
			Help: "Total disease predictions by outcome",
		}, []string{"outcome"}),

		PredictLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "agriai_disease_predict_duration_seconds",
			Help:    "Duration of image decoding and color analysis",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		UploadsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agriai_disease_uploads_rejected_total",
			Help: "Image uploads rejected before analysis by reason",
		}, []string{"reason"}), // reason: "missing", "extension", "too_large", "rate_limited", "storage"
	}
}

// ObservePrediction records one prediction and its duration.
func (m *Metrics) ObservePrediction(outcome string, d time.Duration) {
	if m != nil {
		m.Predictions.WithLabelValues(outcome).Inc()
		m.PredictLatency.Observe(d.Seconds())
	}
}

// IncrementRejected records an upload rejected before analysis.
func (m *Metrics) IncrementRejected(reason string) {
	if m != nil {
		m.UploadsRejected.WithLabelValues(reason).Inc()
	}
}
