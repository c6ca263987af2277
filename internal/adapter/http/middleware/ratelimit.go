package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-offers/offer-pipeline-service/internal/infrastructure/metrics"
	"github.com/flight-offers/offer-pipeline-service/internal/infrastructure/ratelimit"
)

// RateLimit returns middleware that throttles clients by IP using the given
// limiter. Rejected requests get a 429 response. The metrics argument may be
// nil when no drop counter is wanted.
func RateLimit(limiter *ratelimit.ClientLimiter, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				if m != nil {
					m.IncRateLimitDrops()
				}
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"code":    "rate_limited",
					"message": "Too many requests",
				})
			}
			return next(c)
		}
	}
}
