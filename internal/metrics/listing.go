package metrics

import "github.com/prometheus/client_golang/prometheus"

// Listing pipeline Prometheus metrics.
var (
	ListingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clipdex",
			Name:      "listing_requests_total",
			Help:      "Total number of listing requests",
		},
		[]string{"scope"},
	)

	// ListingCandidates tracks how many documents each request scored in
	// memory. Growth here is the early warning for the full-set scoring
	// ceiling.
	ListingCandidates = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "clipdex",
			Name:      "listing_candidates",
			Help:      "Candidate set size per listing request",
			Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000},
		},
		[]string{"scope"},
	)
)

var listingMetricsRegistered bool

// RegisterListingMetrics registers Prometheus listing metrics. Must be called once from main.
func RegisterListingMetrics() {
	if listingMetricsRegistered {
		return
	}
	prometheus.MustRegister(ListingRequestsTotal)
	prometheus.MustRegister(ListingCandidates)
	listingMetricsRegistered = true
}

// ListingObserver feeds listing pipeline measurements into Prometheus.
type ListingObserver struct{}

// ObserveCandidates records one request's candidate set size.
func (ListingObserver) ObserveCandidates(scope string, count int) {
	ListingRequestsTotal.WithLabelValues(scope).Inc()
	ListingCandidates.WithLabelValues(scope).Observe(float64(count))
}
