package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the crew recommendation batch HTTP handler
	RecommendBatchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "crew_recommend_batch_latency_seconds",
		Help:    "Latency of crew recommendation batch handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation batches accepted
	RecommendBatchRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "crew_recommend_batch_requests_total",
		Help: "Total number of crew recommendation batch requests",
	})

	// Total number of weight forecast requests by variant
	ForecastRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "weight_forecast_requests_total",
		Help: "Total number of weight forecast requests",
	}, []string{"variant"})
)

func Init() {
	prometheus.MustRegister(
		RecommendBatchLatency,
		RecommendBatchRequests,
		ForecastRequests,
	)
}
