package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := New()

	m.PointsEarned(200)
	m.PointsEarned(0)
	m.Redemption(coreport.OutcomeSuccess, 100)
	m.Redemption(coreport.OutcomeInsufficient, 0)
	m.Redemption(coreport.OutcomeInsufficient, 0)
	m.RewardFulfilled()

	assert.Equal(t, float64(200), testutil.ToFloat64(m.pointsEarned))
	assert.Equal(t, float64(100), testutil.ToFloat64(m.pointsRedeemed))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.redemptions.WithLabelValues(coreport.OutcomeSuccess)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.redemptions.WithLabelValues(coreport.OutcomeInsufficient)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.fulfillments))
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/v1/rewards", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rewards", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, float64(3), testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/api/v1/rewards", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "loyalty_http_request_duration_seconds_bucket"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestMetrics_ObserveQuery(t *testing.T) {
	m := New()

	m.ObserveQuery("select", "profiles", 2*time.Millisecond, false)
	m.ObserveQuery("select", "profiles", 3*time.Millisecond, false)
	m.ObserveQuery("update", "profiles", time.Second, true)
	m.ObserveQuery("ping", "", time.Millisecond, false)

	assert.Equal(t, 3, testutil.CollectAndCount(m.dbQueryDuration))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	assert.Contains(t, body, `loyalty_db_query_duration_seconds_count{operation="select",outcome="ok",table="profiles"} 2`)
	assert.Contains(t, body, `loyalty_db_query_duration_seconds_count{operation="update",outcome="error",table="profiles"} 1`)
	assert.Contains(t, body, `loyalty_db_query_duration_seconds_count{operation="ping",outcome="ok",table="none"} 1`)
}
