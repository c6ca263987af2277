// Package http provides the HTTP handler layer for the offer pipeline API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-offers/offer-pipeline-service/internal/adapter/amadeus"
	"github.com/flight-offers/offer-pipeline-service/internal/adapter/http/response"
	"github.com/flight-offers/offer-pipeline-service/internal/domain"
	"github.com/flight-offers/offer-pipeline-service/internal/pipeline"
)

// OfferHandler handles HTTP requests for offer-processing endpoints.
type OfferHandler struct {
	processor pipeline.Processor
}

// NewOfferHandler creates a new OfferHandler with the given processor.
func NewOfferHandler(p pipeline.Processor) *OfferHandler {
	return &OfferHandler{
		processor: p,
	}
}

// ProcessOffers handles POST /api/v1/offers/process
//
// @Summary Process a flight-offer set
// @Description Filter, sort and paginate a set of flight offers and compute price statistics
// @Tags offers
// @Accept json
// @Produce json
// @Param request body ProcessOffersRequest true "Offer set and processing options"
// @Success 200 {object} ProcessResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "Malformed offers"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/offers/process [post]
func (h *OfferHandler) ProcessOffers(c echo.Context) error {
	var req ProcessOffersRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.processor.Process(c.Request().Context(), ToPipelineRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Processed(c, ToProcessResponseDTO(result, req.Dictionaries))
}

// ImportOffers handles POST /api/v1/offers/import
//
// It accepts a raw flight-offers search payload (the upstream API envelope
// with meta, data and dictionaries), normalizes it, and runs the pipeline.
// Filter, sort and page selections come from query parameters.
//
// @Summary Process a raw flight-offers search payload
// @Description Decode an upstream search response envelope and process its offers
// @Tags offers
// @Accept json
// @Produce json
// @Param sortBy query string false "Sort option: best, price_high, fastest"
// @Param page query int false "1-based page number"
// @Param pageSize query int false "Page size (max 50)"
// @Param stops query int false "Connection count filter (2 means two or more)"
// @Param airlines query string false "Comma-separated airline codes"
// @Param minPrice query number false "Minimum total price (inclusive)"
// @Param maxPrice query number false "Maximum total price (inclusive)"
// @Success 200 {object} ProcessResponseDTO
// @Failure 400 {object} response.ErrorDetail "Malformed payload or parameters"
// @Router /api/v1/offers/import [post]
func (h *OfferHandler) ImportOffers(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.InvalidRequestBody(c)
	}

	decoded, err := amadeus.Decode(payload)
	if err != nil {
		return response.InvalidRequestBody(c)
	}

	req, err := requestFromQuery(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}
	offers, rejected := amadeus.Normalize(decoded.Data)
	req.Offers = offers

	result, procErr := h.processor.Process(c.Request().Context(), ToPipelineRequest(req))
	if procErr != nil {
		return h.handleError(c, procErr)
	}
	// Offers the normalizer dropped count as rejected alongside any the
	// pipeline itself excluded.
	result.Rejected += len(rejected)

	return response.Processed(c, ToProcessResponseDTO(result, &decoded.Dictionaries))
}

// requestFromQuery builds a validated ProcessOffersRequest from the import
// endpoint's query parameters.
func requestFromQuery(c echo.Context) (*ProcessOffersRequest, error) {
	errs := &ValidationErrors{}
	req := &ProcessOffersRequest{
		SortBy: c.QueryParam("sortBy"),
	}

	req.Page = queryInt(c, "page", "page", errs)
	req.PageSize = queryInt(c, "pageSize", "pageSize", errs)

	filters := &FilterDTO{}
	hasFilters := false

	if v := c.QueryParam("stops"); v != "" {
		stops := queryInt(c, "stops", "stops", errs)
		filters.Stops = &stops
		hasFilters = true
	}
	if v := c.QueryParam("airlines"); v != "" {
		filters.Airlines = strings.Split(v, ",")
		hasFilters = true
	}

	minPrice := queryFloat(c, "minPrice", errs)
	maxPrice := queryFloat(c, "maxPrice", errs)
	if minPrice != nil || maxPrice != nil {
		filters.PriceRange = &PriceRangeDTO{Min: minPrice, Max: maxPrice}
		hasFilters = true
	}

	if hasFilters {
		req.Filters = filters
	}

	if errs.HasErrors() {
		return nil, errs
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func queryInt(c echo.Context, param, field string, errs *ValidationErrors) int {
	v := c.QueryParam(param)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		errs.Add(field, field+" must be a number")
		return 0
	}
	return n
}

func queryFloat(c echo.Context, param string, errs *ValidationErrors) *float64 {
	v := c.QueryParam(param)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		errs.Add(param, param+" must be a number")
		return nil
	}
	return &f
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *OfferHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *OfferHandler) handleError(c echo.Context, err error) error {
	// Check for malformed offers rejected in strict validation mode
	if domain.IsMalformedOffer(err) {
		return response.MalformedOffers(c, err.Error())
	}

	// Check for invalid request (domain validation)
	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *OfferHandler) Health(c echo.Context) error {
	return response.Health(c)
}
