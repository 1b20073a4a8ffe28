package metrics

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

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New("field_estimator")

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/jobs/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/jobs/5", "/api/jobs/6", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/jobs/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestObserveQuote(t *testing.T) {
	m := New("field_estimator")
	m.ObserveQuote("resolved")
	m.ObserveQuote("resolved")
	m.ObserveQuote("fallback")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.PricingQuotesTotal.WithLabelValues("resolved")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PricingQuotesTotal.WithLabelValues("fallback")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New("field_estimator")
	m.ObserveQuote("not_found")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `field_estimator_pricing_quotes_total{outcome="not_found"} 1`))
}
