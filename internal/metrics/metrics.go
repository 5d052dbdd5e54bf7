package metrics

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce       sync.Once
	httpRequestsTotal  *prometheus.CounterVec
	httpLatencySeconds *prometheus.HistogramVec
	lifecycleOpsTotal  *prometheus.CounterVec
	cascadeRowsDeleted *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "capstone_http_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "capstone_http_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		lifecycleOpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "capstone_lifecycle_operations_total",
			Help: "Lifecycle operations by name and outcome (ok or the error code).",
		}, []string{"operation", "outcome"})

		cascadeRowsDeleted = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "capstone_cascade_rows_deleted_total",
			Help: "Rows removed by committed cascading deletes.",
		}, []string{"root", "table"})

		prometheus.MustRegister(httpRequestsTotal, httpLatencySeconds, lifecycleOpsTotal, cascadeRowsDeleted)
	})
}

// HTTPRequests exposes the counter for API requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for API requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// LifecycleOperations exposes the counter for service operations.
func LifecycleOperations() *prometheus.CounterVec {
	RegisterMetrics()
	return lifecycleOpsTotal
}

// CascadeRowsDeleted exposes the counter for rows removed by cascades.
func CascadeRowsDeleted() *prometheus.CounterVec {
	RegisterMetrics()
	return cascadeRowsDeleted
}

// Handler exposes the Prometheus scrape endpoint via gin.
func Handler() gin.HandlerFunc {
	RegisterMetrics()
	return gin.WrapH(promhttp.Handler())
}
