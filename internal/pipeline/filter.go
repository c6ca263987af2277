// Package pipeline implements the flight-offer processing core: boundary
// sanitization, filtering, sorting, metadata, pagination and price
// statistics. Every function is a pure transform over its inputs; none
// mutates the offer slice it receives.
package pipeline

import (
	"github.com/flight-offers/offer-pipeline-service/internal/domain"
)

// FilterOffers applies the given filters to an offer list.
// It returns a new slice containing only offers that match all clauses,
// preserving the original relative order.
//
// Behavior:
//   - A nil or identity filter returns the offers unchanged (same elements,
//     same order)
//   - Clauses are conjunctive: stops AND price range AND airlines
//   - Does NOT mutate the input slice
//   - Performance is O(n) where n = number of offers
func FilterOffers(offers []domain.Offer, filters *domain.Filters) []domain.Offer {
	if filters.IsIdentity() {
		return offers
	}

	result := make([]domain.Offer, 0, len(offers))
	for _, offer := range offers {
		if filters.Matches(offer) {
			result = append(result, offer)
		}
	}
	return result
}
