package storefront

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	CartSignals       prometheus.Counter
	SuggestionResults prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CartSignals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "cart_signals_total",
			Help:      "Add-to-cart signals acknowledged",
		}),
		SuggestionResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "suggestion_results",
			Help:      "Suggestions returned per non-empty query",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6},
		}),
	}

	reg.MustRegister(m.CartSignals, m.SuggestionResults)
	return m
}
