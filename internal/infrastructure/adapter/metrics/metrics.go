package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

const namespace = "loyalty"

// Metrics holds the service's Prometheus collectors on a private registry
type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	pointsEarned    prometheus.Counter
	pointsRedeemed  prometheus.Counter
	redemptions     *prometheus.CounterVec
	fulfillments    prometheus.Counter
	dbQueryDuration *prometheus.HistogramVec
}

var _ coreport.Metrics = (*Metrics)(nil)

// New registers the collectors. Go runtime and process collectors are included.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		pointsEarned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "points",
			Name:      "earned_total",
			Help:      "Points credited to balances",
		}),
		pointsRedeemed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "points",
			Name:      "redeemed_total",
			Help:      "Points debited by redemptions",
		}),
		redemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "points",
			Name:      "redemptions_total",
			Help:      "Redemption attempts by outcome",
		}, []string{"outcome"}),
		fulfillments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rewards",
			Name:      "fulfilled_total",
			Help:      "Reward codes marked fulfilled",
		}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database statement latency by operation, table and outcome",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation", "table", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestsTotal,
		m.pointsEarned,
		m.pointsRedeemed,
		m.redemptions,
		m.fulfillments,
		m.dbQueryDuration,
	)
	return m
}

// RegisterDB exports connection pool statistics of db
func (m *Metrics) RegisterDB(db *sql.DB, dbName string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// PointsEarned implements core.Metrics
func (m *Metrics) PointsEarned(points int64) {
	if points > 0 {
		m.pointsEarned.Add(float64(points))
	}
}

// Redemption implements core.Metrics
func (m *Metrics) Redemption(outcome string, points int64) {
	m.redemptions.WithLabelValues(outcome).Inc()
	if points > 0 {
		m.pointsRedeemed.Add(float64(points))
	}
}

// RewardFulfilled implements core.Metrics
func (m *Metrics) RewardFulfilled() {
	m.fulfillments.Inc()
}

// ObserveQuery implements database.QueryObserver
func (m *Metrics) ObserveQuery(operation, table string, duration time.Duration, failed bool) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	if table == "" {
		table = "none"
	}
	m.dbQueryDuration.WithLabelValues(operation, table, outcome).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware observes request latency. Unmatched routes share one label.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.requestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
	}
}
