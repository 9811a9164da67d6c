package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oceancruise/internal/metrics"
	"github.com/katalvlaran/oceancruise/route"
)

func TestObserveOrdering(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveOrdering(4, route.Result{Orientation: route.West}, time.Millisecond, nil)
	m.ObserveOrdering(3, route.Result{Orientation: route.West, Degenerate: true}, time.Millisecond, nil)
	m.ObserveOrdering(5, route.Result{Orientation: route.South}, time.Millisecond, nil)
	m.ObserveOrdering(2, route.Result{}, time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OrderingsTotal.WithLabelValues("west")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrderingsTotal.WithLabelValues("south")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DegenerateTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrderingErrors))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New(nil)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping/:id", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, p := range []string{"/ping/1", "/ping/2", "/missing"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body,
		`cruiseroute_http_requests_total{method="GET",path="/ping/:id",status="200"} 2`), body)
	assert.Contains(t, body, `path="unmatched",status="404"`)
}
