// Package amadeus decodes Amadeus Flight Offers Search responses into
// domain entities. It is the single ingestion boundary of the service:
// raw payloads enter here and only normalized domain offers leave.
package amadeus

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/flight-offers/offer-pipeline-service/internal/domain"
)

// SourceName is the unique identifier for the Amadeus offer source.
const SourceName = "amadeus"

// Meta carries the envelope-level metadata of a search response.
type Meta struct {
	Count int `json:"count"`
}

// SearchResponse is the top-level Amadeus Flight Offers Search envelope.
type SearchResponse struct {
	Meta         Meta                `json:"meta"`
	Data         []domain.Offer      `json:"data"`
	Dictionaries domain.Dictionaries `json:"dictionaries"`
}

// Decode parses a raw Amadeus search response payload.
func Decode(payload []byte) (*SearchResponse, error) {
	var resp SearchResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode amadeus response: %w", err)
	}
	return &resp, nil
}

// Normalize prepares decoded offers for the processing pipeline. Offers
// without an identifier are assigned a generated one so downstream
// stages can always reference them. Offers that fail normalization are
// skipped and reported by ID (or assigned ID) in the second return
// value.
//
// Does NOT mutate the input slice.
func Normalize(offers []domain.Offer) ([]domain.Offer, []string) {
	result := make([]domain.Offer, 0, len(offers))
	var rejected []string

	for _, offer := range offers {
		normalized, err := normalizeOffer(offer)
		if err != nil {
			rejected = append(rejected, normalized.ID)
			continue
		}
		result = append(result, normalized)
	}

	return result, rejected
}

// normalizeOffer validates a single offer and fills in generated fields.
// The returned offer always carries a usable ID, even on error, so
// callers can report which offer was rejected.
func normalizeOffer(offer domain.Offer) (domain.Offer, error) {
	if offer.ID == "" {
		offer.ID = uuid.NewString()
	}

	if len(offer.Itineraries) == 0 {
		return offer, fmt.Errorf("offer %s has no itineraries", offer.ID)
	}
	for i, itin := range offer.Itineraries {
		if len(itin.Segments) == 0 {
			return offer, fmt.Errorf("offer %s itinerary %d has no segments", offer.ID, i)
		}
	}

	if !offer.HasValidPrice() {
		return offer, domain.NewMalformedOfferError(offer.ID, "unparseable or negative total price")
	}

	return offer, nil
}
