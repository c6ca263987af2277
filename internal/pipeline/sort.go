package pipeline

import (
	"sort"

	"github.com/flight-offers/offer-pipeline-service/internal/domain"
)

// SortOffers orders offers by the given sort policy.
// Uses stable sorting so offers with equal keys keep their relative input
// order and never visibly swap between recomputations.
//
// Sort options:
//   - SortByBest (default): ascending by price per minute of travel
//   - SortByPrice: ascending by total price (cheapest first)
//   - SortByFastest: ascending by total duration
//
// Behavior:
//   - Returns the input slice for empty or single-element input
//   - Empty or invalid sortBy defaults to SortByBest
//   - Does NOT mutate the input slice
func SortOffers(offers []domain.Offer, sortBy domain.SortOption) []domain.Offer {
	if len(offers) <= 1 {
		return offers
	}

	result := make([]domain.Offer, len(offers))
	copy(result, offers)

	if !sortBy.IsValid() {
		sortBy = domain.SortByBest
	}

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalPrice() < result[j].TotalPrice()
		})
	case domain.SortByFastest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalDurationMinutes() < result[j].TotalDurationMinutes()
		})
	case domain.SortByBest:
		sort.SliceStable(result, func(i, j int) bool {
			return bestScore(result[i]) < bestScore(result[j])
		})
	}

	return result
}

// bestScore is the "best" policy's ranking key: price per minute of travel,
// lower is better. The divisor is floored at one minute so offers with
// unparseable (zero) durations cannot divide by zero.
func bestScore(offer domain.Offer) float64 {
	duration := offer.TotalDurationMinutes()
	if duration < 1 {
		duration = 1
	}
	return offer.TotalPrice() / float64(duration)
}
