// Package http provides the HTTP handler layer for the offer pipeline API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all offer pipeline API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *OfferHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Offers group
	offers := api.Group("/offers")
	offers.POST("/process", h.ProcessOffers)
	offers.POST("/import", h.ImportOffers)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *OfferHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	// Offers group
	offers := api.Group("/offers")
	offers.POST("/process", h.ProcessOffers)
	offers.POST("/import", h.ImportOffers)
}
