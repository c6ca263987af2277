package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the base middleware on the Echo instance in the correct
// order:
//  1. RequestID - first, so every later log line carries the ID
//  2. RequestLogger - logs all requests with the request ID
//  3. Recover - catches handler panics and returns 500
//
// HTTPMetrics and RateLimit are registered separately by the server entry
// point since they need collectors and limiter configuration. This function
// should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}

// Chain returns the base middleware as a slice for use with route groups,
// for deployments that want the offer endpoints wrapped but not /metrics
// or /swagger.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
