package router

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/buildledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware sets the base URL of the API in the request context so
// that responses can contain absolute links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url.String())
		c.Next()
	}
}

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests_total",
			Help: "Number of HTTP requests processed, partitioned by status code, HTTP method and route.",
		},
		[]string{"code", "method", "url"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "request_duration_seconds",
			Help: "HTTP request latency in seconds.",
		},
		[]string{"code", "method", "url"},
	)

	collectors = []prometheus.Collector{requestCount, requestDuration}
)

func registerPrometheusMetrics() error {
	for _, collector := range collectors {
		if err := prometheus.Register(collector); err != nil {
			return fmt.Errorf("could not register %s with Prometheus", collector)
		}
	}

	return nil
}

// unregisterPrometheusMetrics removes the collectors again. Tests attach
// routes once per request and need this between attachments.
func unregisterPrometheusMetrics() bool {
	for _, collector := range collectors {
		if ok := prometheus.Unregister(collector); !ok {
			return false
		}
	}

	return true
}

// MetricsMiddleware records count and duration for every request.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Path parameters are replaced by their names so that every job or
		// cost code does not become its own label value.
		route := c.Request.URL.Path
		for _, p := range c.Params {
			route = strings.Replace(route, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		code := strconv.Itoa(c.Writer.Status())
		requestDuration.WithLabelValues(code, c.Request.Method, route).Observe(time.Since(start).Seconds())
		requestCount.WithLabelValues(code, c.Request.Method, route).Inc()
	}
}
