package pipeline

import (
	"fmt"
	"strings"

	"github.com/flight-offers/offer-pipeline-service/internal/domain"
)

// SanitizeOffers splits an offer list into offers safe to process and the
// ids of offers whose price does not parse to a non-negative finite number.
// A NaN price would silently corrupt every comparison downstream, so
// malformed offers must never enter the filter/sort/stats stages.
//
// The input slice is not mutated; the returned valid slice preserves order.
func SanitizeOffers(offers []domain.Offer) (valid []domain.Offer, rejectedIDs []string) {
	valid = make([]domain.Offer, 0, len(offers))

	for _, offer := range offers {
		if offer.HasValidPrice() {
			valid = append(valid, offer)
			continue
		}
		rejectedIDs = append(rejectedIDs, offer.ID)
	}

	return valid, rejectedIDs
}

// ValidateOffers returns an error wrapping domain.ErrMalformedOffer when any
// offer in the list carries an unparseable price. Used in strict mode, where
// bad input fails the whole request instead of being dropped.
func ValidateOffers(offers []domain.Offer) error {
	_, rejected := SanitizeOffers(offers)
	if len(rejected) == 0 {
		return nil
	}
	if len(rejected) == 1 {
		return domain.NewMalformedOfferError(rejected[0], "price.total is not a non-negative number")
	}
	return fmt.Errorf("%w: offers [%s]: price.total is not a non-negative number",
		domain.ErrMalformedOffer, strings.Join(rejected, ", "))
}
