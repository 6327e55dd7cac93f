package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_http_requests_total",
		Help: "Total number of HTTP requests to the catalog server",
	}, []string{"method", "path", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	CatalogBooks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_books",
		Help: "Number of books in the loaded catalog",
	})

	SnapshotCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_snapshot_cache_lookups_total",
		Help: "Snapshot cache lookups by result (hit, miss, error)",
	}, []string{"result"})
)
