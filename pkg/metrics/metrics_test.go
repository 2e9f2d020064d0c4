package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New("teste")

	m.SaleOperation("create", "success")
	m.SaleOperation("create", "insufficient_stock")
	m.SaleOperation("create", "insufficient_stock")
	m.LoginAttempt("success")

	if got := testutil.ToFloat64(m.saleOperations.WithLabelValues("create", "insufficient_stock")); got != 2 {
		t.Errorf("vendas rejeitadas = %v, esperado 2", got)
	}
	if got := testutil.ToFloat64(m.loginAttempts.WithLabelValues("success")); got != 1 {
		t.Errorf("logins = %v, esperado 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.SaleOperation("create", "success")
	m.LoginAttempt("success")
	m.TenantContextMissing()
	m.TrackDBOperation("select")()
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New("teste")

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/produtos/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/produtos/123", nil))

	if got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/produtos/:id", "200")); got != 1 {
		t.Errorf("requisições = %v, esperado 1", got)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), "teste_http_requests_total") {
		t.Error("endpoint de métricas deveria expor teste_http_requests_total")
	}
}
