package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbPoolOpenConns  *prometheus.GaugeVec
	dbPoolInUseConns *prometheus.GaugeVec
	dbPoolIdleConns  *prometheus.GaugeVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		dbQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"service", "operation", "result"},
		),
		dbQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),
		dbPoolOpenConns: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_open_connections",
				Help: "Number of open connections in the pool",
			},
			[]string{"service"},
		),
		dbPoolInUseConns: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_in_use_connections",
				Help: "Number of connections currently in use",
			},
			[]string{"service"},
		),
		dbPoolIdleConns: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_idle_connections",
				Help: "Number of idle connections in the pool",
			},
			[]string{"service"},
		),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueriesTotal,
		m.dbQueryDuration,
		m.dbPoolOpenConns,
		m.dbPoolInUseConns,
		m.dbPoolIdleConns,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершённый HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(seconds)
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(service, operation string, seconds float64, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.dbQueriesTotal.WithLabelValues(service, operation, result).Inc()
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(seconds)
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(service string, open, inUse, idle int) {
	m.dbPoolOpenConns.WithLabelValues(service).Set(float64(open))
	m.dbPoolInUseConns.WithLabelValues(service).Set(float64(inUse))
	m.dbPoolIdleConns.WithLabelValues(service).Set(float64(idle))
}
