// Package http provides the HTTP handler layer for the offer pipeline API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flight-offers/offer-pipeline-service/internal/domain"
)

// ProcessOffersRequest represents the request body for offer processing.
// The caller submits the raw offer set together with its current filter,
// sort and page selections; the service holds no state between calls.
type ProcessOffersRequest struct {
	// Offers is the raw offer set to process. May be empty, in which case
	// the response carries zero-valued statistics.
	Offers []domain.Offer `json:"offers"`

	// Dictionaries are the optional code-to-name lookup tables shipped with
	// the offer set, used to enrich the response with display names
	Dictionaries *domain.Dictionaries `json:"dictionaries,omitempty"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort results: best, price_high, fastest
	SortBy string `json:"sortBy,omitempty"`

	// Page is the 1-based page to return (default 1)
	Page int `json:"page,omitempty"`

	// PageSize is the number of offers per page (default 10, max 50)
	PageSize int `json:"pageSize,omitempty"`
}

// FilterDTO represents optional filters for offer processing.
// Example: {"stops": 0, "priceRange": {"min": 100, "max": 800}, "airlines": ["BA", "AF"]}
type FilterDTO struct {
	// Stops constrains the connection count: 0 = nonstop, 1 = one stop,
	// 2 = two or more stops
	Stops *int `json:"stops,omitempty" example:"0"`

	// PriceRange constrains the total price; bounds are inclusive
	PriceRange *PriceRangeDTO `json:"priceRange,omitempty"`

	// Airlines restricts results to offers operated by these airline codes
	Airlines []string `json:"airlines,omitempty" example:"BA,AF"`
}

// PriceRangeDTO represents an inclusive price window.
type PriceRangeDTO struct {
	// Min is the minimum acceptable total price
	Min *float64 `json:"min,omitempty" example:"100"`

	// Max is the maximum acceptable total price
	Max *float64 `json:"max,omitempty" example:"800"`
}

// airlineCodePattern matches IATA carrier designators (2-3 alphanumerics).
var airlineCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)

// Valid sort options. Empty defaults to best.
var validSortOptions = map[string]bool{
	"":                           true,
	string(domain.SortByBest):    true,
	string(domain.SortByPrice):   true,
	string(domain.SortByFastest): true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the process request and returns any validation errors.
// Airline codes are normalized to uppercase in place.
func (r *ProcessOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateSortBy(errs)
	r.validatePaging(errs)
	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *ProcessOffersRequest) validateSortBy(errs *ValidationErrors) {
	if !validSortOptions[r.SortBy] {
		errs.Add("sortBy", "sortBy must be one of: best, price_high, fastest")
	}
}

func (r *ProcessOffersRequest) validatePaging(errs *ValidationErrors) {
	if r.Page < 0 {
		errs.Add("page", "page must be a positive number")
	}
	if r.PageSize < 0 {
		errs.Add("pageSize", "pageSize must be a positive number")
	}
}

func (r *ProcessOffersRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.Stops != nil && *r.Filters.Stops < 0 {
		errs.Add("filters.stops", "stops must be a non-negative number")
	}

	if pr := r.Filters.PriceRange; pr != nil {
		if pr.Min != nil && *pr.Min < 0 {
			errs.Add("filters.priceRange.min", "min must be a non-negative number")
		}
		if pr.Max != nil && *pr.Max < 0 {
			errs.Add("filters.priceRange.max", "max must be a non-negative number")
		}
		if pr.Min != nil && pr.Max != nil && *pr.Min > *pr.Max {
			errs.Add("filters.priceRange", "min must be less than or equal to max")
		}
	}

	for i, airline := range r.Filters.Airlines {
		normalized := strings.ToUpper(strings.TrimSpace(airline))
		if !airlineCodePattern.MatchString(normalized) {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i),
				"airline code must be 2 or 3 characters")
		}
		r.Filters.Airlines[i] = normalized
	}
}
