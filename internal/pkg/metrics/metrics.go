package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ton_portfolio"

// Outcome labels for upstream calls.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	UpstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Calls to the balance and price history APIs by outcome.",
	}, []string{"api", "outcome"})

	UpstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of calls to the balance and price history APIs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"api"})

	WalletStatusChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wallet_status_changes_total",
		Help:      "Wallet connect and disconnect events seen by the session.",
	}, []string{"status"})

	DisplayedTokens = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "displayed_tokens",
		Help:      "Number of non-zero token rows currently displayed.",
	})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests served by the API.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	registerOnce sync.Once
)

// MustRegisterMetrics registers all collectors with the default registry once.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			UpstreamRequests,
			UpstreamDuration,
			WalletStatusChanges,
			DisplayedTokens,
			HTTPRequestDuration,
		)
	})
}

// ObserveUpstream records one upstream call.
func ObserveUpstream(api string, started time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	UpstreamRequests.WithLabelValues(api, outcome).Inc()
	UpstreamDuration.WithLabelValues(api).Observe(time.Since(started).Seconds())
}

// GinMiddleware records request latency per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
