package pipeline

import (
	"strconv"

	"github.com/flight-offers/offer-pipeline-service/internal/domain"
)

// testOffer builds an offer with the given price, carrier, connection count
// and itinerary duration. The airport chain is synthesized from the stop
// count.
func testOffer(id, total, carrier string, stops int, duration string) domain.Offer {
	airports := []string{"LHR"}
	for i := 0; i < stops; i++ {
		airports = append(airports, "X"+strconv.Itoa(i)+"A")
	}
	airports = append(airports, "JFK")

	it := domain.Itinerary{Duration: duration}
	for i := 0; i < len(airports)-1; i++ {
		it.Segments = append(it.Segments, domain.Segment{
			Departure:   domain.Endpoint{IataCode: airports[i], At: "2026-03-10T08:00:00"},
			Arrival:     domain.Endpoint{IataCode: airports[i+1], At: "2026-03-10T16:00:00"},
			CarrierCode: carrier,
			Aircraft:    domain.Aircraft{Code: "789"},
		})
	}

	return domain.Offer{
		ID:          id,
		Itineraries: []domain.Itinerary{it},
		Price:       domain.Price{Currency: "USD", Total: total},
	}
}

// pricedOffers builds nonstop offers with the given prices and sequential ids.
func pricedOffers(totals ...string) []domain.Offer {
	offers := make([]domain.Offer, len(totals))
	for i, total := range totals {
		offers[i] = testOffer(strconv.Itoa(i+1), total, "BA", 0, "PT8H")
	}
	return offers
}

// offerIDs extracts the ids of an offer list, in order.
func offerIDs(offers []domain.Offer) []string {
	ids := make([]string, len(offers))
	for i, o := range offers {
		ids[i] = o.ID
	}
	return ids
}

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
