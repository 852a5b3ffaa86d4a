package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EligibilityChecks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nexora_eligibility_checks_total",
			Help: "Total number of eligibility checks performed",
		},
	)

	EligibilityMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nexora_eligibility_matches",
			Help:    "Number of matching programs returned per check",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	CurrencyConversions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nexora_currency_conversions_total",
			Help: "Total currency conversions by currency pair",
		},
		[]string{"from", "to"},
	)

	RequestsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nexora_requests_rejected_total",
			Help: "Requests rejected at the boundary by reason",
		},
		[]string{"endpoint", "reason"},
	)
)
