package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the offer-processing pipeline.
// Callers should match with errors.Is or the Is* helpers below.
var (
	// ErrInvalidRequest indicates the caller supplied invalid parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMalformedOffer indicates an offer that cannot enter the pipeline,
	// typically because its price does not parse to a finite number.
	ErrMalformedOffer = errors.New("malformed offer")

	// ErrNoOffers indicates a request carried no offers at all.
	ErrNoOffers = errors.New("no offers to process")
)

// WrapInvalidRequest wraps ErrInvalidRequest with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// NewMalformedOfferError wraps ErrMalformedOffer with the offending offer's
// identifier and the reason it was rejected.
func NewMalformedOfferError(offerID, reason string) error {
	return fmt.Errorf("%w: offer %q: %s", ErrMalformedOffer, offerID, reason)
}

// IsInvalidRequest checks if an error is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsMalformedOffer checks if an error is or wraps ErrMalformedOffer.
func IsMalformedOffer(err error) bool {
	return errors.Is(err, ErrMalformedOffer)
}

// IsNoOffers checks if an error is or wraps ErrNoOffers.
func IsNoOffers(err error) bool {
	return errors.Is(err, ErrNoOffers)
}

// ValidationError represents a field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
