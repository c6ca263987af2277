package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-offers/offer-pipeline-service/internal/infrastructure/metrics"
)

// HTTPMetrics returns middleware that records request counts and latencies
// into the given Prometheus collectors. The route path (not the raw URL) is
// used as the path label to keep the cardinality bounded.
func HTTPMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			m.ObserveHTTPRequest(
				c.Request().Method,
				path,
				c.Response().Status,
				time.Since(start).Seconds(),
			)

			return nil
		}
	}
}
