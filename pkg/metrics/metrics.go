package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os coletores da aplicação.
// Os métodos aceitam receptor nil, o que desliga a coleta.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	loginAttempts        *prometheus.CounterVec
	tenantContextMissing prometheus.Counter

	saleOperations      *prometheus.CounterVec
	dbOperationDuration *prometheus.HistogramVec
}

// New cria e registra os coletores com o prefixo informado
func New(prefix string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		loginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_login_attempts_total",
				Help: "Total number of login attempts by outcome",
			},
			[]string{"outcome"},
		),

		tenantContextMissing: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_tenant_context_missing_total",
				Help: "Total number of requests without tenant context",
			},
		),

		saleOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_sale_operations_total",
				Help: "Total number of sale operations by outcome",
			},
			[]string{"operation", "outcome"},
		),

		dbOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_db_operation_duration_seconds",
				Help:    "Duration of database operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		),
	}
}

// Handler expõe os coletores no formato do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SaleOperation implementa sale.Recorder
func (m *Metrics) SaleOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.saleOperations.WithLabelValues(operation, outcome).Inc()
}

// LoginAttempt implementa session.LoginRecorder
func (m *Metrics) LoginAttempt(outcome string) {
	if m == nil {
		return
	}
	m.loginAttempts.WithLabelValues(outcome).Inc()
}

// TenantContextMissing conta requisições de usuários sem tenant
func (m *Metrics) TenantContextMissing() {
	if m == nil {
		return
	}
	m.tenantContextMissing.Inc()
}

// TrackDBOperation retorna uma função que registra a duração da operação
func (m *Metrics) TrackDBOperation(operationType string) func() {
	start := time.Now()
	return func() {
		if m == nil {
			return
		}
		m.dbOperationDuration.WithLabelValues(operationType).Observe(time.Since(start).Seconds())
	}
}

// GinMiddleware registra contagem e duração de cada requisição.
// O caminho usado é o da rota, não a URL, para limitar a cardinalidade.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if m == nil {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = "desconhecido"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
