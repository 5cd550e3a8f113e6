package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер всех prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnsOpen     *prometheus.GaugeVec
	dbConnsInUse    *prometheus.GaugeVec
	dbConnsIdle     *prometheus.GaugeVec

	bookingsConfirmedTotal *prometheus.CounterVec
	bookingsConflictTotal  *prometheus.CounterVec
}

// New регистрирует метрики в дефолтном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		dbConnsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Open connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbConnsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbConnsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Idle connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),

		bookingsConfirmedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_confirmed_total",
			Help:        "Bookings successfully confirmed through the workflow",
			ConstLabels: constLabels,
		}, []string{}),

		bookingsConflictTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_slot_conflict_total",
			Help:        "Confirm attempts rejected because the slot was taken",
			ConstLabels: constLabels,
		}, []string{}),
	}
}

// ObserveHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveDBQuery учитывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetDBPoolStats обновляет gauge'и connection pool
func (m *Metrics) SetDBPoolStats(db string, open, inUse, idle int) {
	m.dbConnsOpen.WithLabelValues(db).Set(float64(open))
	m.dbConnsInUse.WithLabelValues(db).Set(float64(inUse))
	m.dbConnsIdle.WithLabelValues(db).Set(float64(idle))
}

// IncBookingConfirmed увеличивает счетчик подтвержденных бронирований
func (m *Metrics) IncBookingConfirmed() {
	m.bookingsConfirmedTotal.WithLabelValues().Inc()
}

// IncBookingConflict увеличивает счетчик конфликтов слотов при подтверждении
func (m *Metrics) IncBookingConflict() {
	m.bookingsConflictTotal.WithLabelValues().Inc()
}
