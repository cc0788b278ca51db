package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMetricsMiddlewareCountsByRouteAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/courses/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	serve(router, http.MethodGet, "/courses/abc")
	serve(router, http.MethodGet, "/courses/def")

	// both requests land on the one route template
	got := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/courses/:id", "200"))
	assert.Equal(t, 2.0, got)
}

func TestMetricsMiddlewareSkipsUnmatchedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware())

	serve(router, http.MethodGet, "/no/such/route")

	got := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "", "404"))
	assert.Equal(t, 0.0, got)
}

func TestMetricsEndpointServesNamespacedMetrics(t *testing.T) {
	Init()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", PrometheusHandler())

	serve(router, http.MethodGet, "/ping")
	rec := serve(router, http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "codista_http_requests_total"), "missing request counter")
	assert.True(t, strings.Contains(body, "codista_http_request_duration_seconds"), "missing latency histogram")

	// the scrape itself is not observed
	assert.False(t, strings.Contains(body, `route="/metrics"`), "metrics route observed itself")
}
