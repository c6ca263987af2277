package pipeline

import (
	"math"
	"sort"

	"github.com/flight-offers/offer-pipeline-service/internal/domain"
)

// CalculateMetadata scans an offer set and derives what the filter controls
// need: the distinct primary airline codes (sorted ascending) and integer
// price bounds. The minimum is floored and the maximum is ceiled so every
// real price falls inside the displayed range.
//
// Empty input yields an empty airline list and {0, 0} bounds.
func CalculateMetadata(offers []domain.Offer) domain.Metadata {
	if len(offers) == 0 {
		return domain.Metadata{
			AvailableAirlines: []string{},
			PriceRange:        domain.PriceBounds{Min: 0, Max: 0},
		}
	}

	airlineSet := make(map[string]struct{})
	minPrice := math.MaxFloat64
	maxPrice := -math.MaxFloat64

	for _, offer := range offers {
		if airline := offer.PrimaryAirline(); airline != "" {
			airlineSet[airline] = struct{}{}
		}

		price := offer.TotalPrice()
		if price < minPrice {
			minPrice = price
		}
		if price > maxPrice {
			maxPrice = price
		}
	}

	airlines := make([]string, 0, len(airlineSet))
	for code := range airlineSet {
		airlines = append(airlines, code)
	}
	sort.Strings(airlines)

	return domain.Metadata{
		AvailableAirlines: airlines,
		PriceRange: domain.PriceBounds{
			Min: int(math.Floor(minPrice)),
			Max: int(math.Ceil(maxPrice)),
		},
	}
}
