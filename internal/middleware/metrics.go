package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anto251070/tdd-bdd-final-project/prometheus"
)

// MetricsMiddleware records prometheus request counters and latency for
// every HTTP request
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		duration := time.Since(start).Seconds()

		// Label by the route pattern rather than the raw URL
		method := c.Request().Method
		path := c.Path()
		status := strconv.Itoa(c.Response().Status)

		prometheus.HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(method, path, status).Observe(duration)

		return err
	}
}
