package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the marketplace records.
type Metrics struct {
	SellersRegistered     prometheus.Counter
	NotificationsCreated  prometheus.Counter
	OffersPerRegistration prometheus.Histogram
}

// New registers the marketplace metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SellersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "agriai_marketplace_sellers_registered_total",
			Help: "Total seller profiles registered",
		}),
		NotificationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "agriai_marketplace_notifications_created_total",
			Help: "Total buyer-interest notifications created",
		}),
		OffersPerRegistration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "agriai_marketplace_offers_per_seller",
			Help:    "Number of crop offers on a newly registered seller",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
		}),
	}
}

func (m *Metrics) IncrementSellersRegistered(offers int) {
	if m != nil {
		m.SellersRegistered.Inc()
		m.OffersPerRegistration.Observe(float64(offers))
	}
}

func (m *Metrics) IncrementNotificationsCreated() {
	if m != nil {
		m.NotificationsCreated.Inc()
	}
}
