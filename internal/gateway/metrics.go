package gateway

import "github.com/prometheus/client_golang/prometheus"

var (
	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tubevirality_upstream_requests_total",
			Help: "Requests issued to the upstream data API, by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	fallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tubevirality_sample_fallbacks_total",
			Help: "Live fetches that fell back to the bundled sample corpus.",
		},
	)

	cacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tubevirality_cache_hits_total",
			Help: "Total Redis cache hits for upstream responses.",
		},
	)

	cacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tubevirality_cache_misses_total",
			Help: "Total Redis cache misses for upstream responses.",
		},
	)
)

// InitMetrics registers the gateway's Prometheus collectors. Call once at
// startup.
func InitMetrics() {
	prometheus.MustRegister(upstreamRequests, fallbacksTotal, cacheHits, cacheMisses)
}
