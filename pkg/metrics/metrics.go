package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus collectors for the service.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbConnectionsOpen  *prometheus.GaugeVec
	dbConnectionsInUse *prometheus.GaugeVec
	dbConnectionsIdle  *prometheus.GaugeVec
}

// New registers and returns the service collectors on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),

		dbConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"pool"}),

		dbConnectionsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}, []string{"pool"}),

		dbConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"pool"}),
	}
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records one executed database query.
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats publishes connection pool gauges.
func (m *Metrics) SetDBPoolStats(pool string, open, inUse, idle int) {
	m.dbConnectionsOpen.WithLabelValues(pool).Set(float64(open))
	m.dbConnectionsInUse.WithLabelValues(pool).Set(float64(inUse))
	m.dbConnectionsIdle.WithLabelValues(pool).Set(float64(idle))
}
