// Package domain contains the core entities and rules for the flight-offer
// processing pipeline. The offer model mirrors the shape returned by the
// upstream flight-offers API; every derived metric lives here so the rest of
// the system never re-implements the arithmetic.
package domain

import (
	"math"
	"regexp"
	"strconv"
)

// Offer represents a single priced, bookable flight offer from the upstream
// search API. An offer carries one itinerary for one-way trips and two for
// round trips (first itinerary = outbound).
type Offer struct {
	// ID is an opaque identifier, unique within a result set
	ID string `json:"id"`

	// Type is the resource type reported by the API (e.g., "flight-offer")
	Type string `json:"type,omitempty"`

	// Source identifies the distribution channel (e.g., "GDS")
	Source string `json:"source,omitempty"`

	// OneWay indicates a one-way fare
	OneWay bool `json:"oneWay,omitempty"`

	// IsUpsellOffer indicates an upsell branded fare
	IsUpsellOffer bool `json:"isUpsellOffer,omitempty"`

	// LastTicketingDate is the last date the offer can be ticketed (YYYY-MM-DD)
	LastTicketingDate string `json:"lastTicketingDate,omitempty"`

	// NumberOfBookableSeats is the remaining seat count at this price
	NumberOfBookableSeats int `json:"numberOfBookableSeats,omitempty"`

	// Itineraries is the ordered sequence of directions (outbound, optional return)
	Itineraries []Itinerary `json:"itineraries"`

	// Price contains the total price for all travelers
	Price Price `json:"price"`

	// PricingOptions contains fare-level options; optional in the API payload
	PricingOptions *PricingOptions `json:"pricingOptions,omitempty"`

	// ValidatingAirlineCodes lists the ticketing carriers
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes,omitempty"`

	// TravelerPricings holds per-traveler fare records; length = traveler count
	TravelerPricings []TravelerPricing `json:"travelerPricings,omitempty"`
}

// Price contains pricing information for an offer.
// Monetary amounts arrive as decimal strings and are parsed on demand.
type Price struct {
	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`

	// Total is the grand total as a decimal string (e.g., "325.40")
	Total string `json:"total"`

	// Base is the base fare before fees and taxes
	Base string `json:"base,omitempty"`

	// GrandTotal is the total including all fees
	GrandTotal string `json:"grandTotal,omitempty"`

	// Fees lists individual fee components
	Fees []Fee `json:"fees,omitempty"`
}

// Fee is a single fee component of an offer price.
type Fee struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

// PricingOptions contains fare-level options attached to an offer.
type PricingOptions struct {
	// FareType lists the fare types included (e.g., "PUBLISHED")
	FareType []string `json:"fareType,omitempty"`

	// IncludedCheckedBagsOnly is true when all segments include checked bags
	IncludedCheckedBagsOnly bool `json:"includedCheckedBagsOnly,omitempty"`
}

// Itinerary is one direction of travel composed of one or more segments.
type Itinerary struct {
	// Duration is an ISO-8601-like duration string (e.g., "PT5H30M")
	Duration string `json:"duration"`

	// Segments is the ordered, non-empty sequence of flight legs
	Segments []Segment `json:"segments"`
}

// Segment is a single flight leg between two airports on one aircraft.
type Segment struct {
	Departure Endpoint `json:"departure"`
	Arrival   Endpoint `json:"arrival"`

	// CarrierCode is the IATA code of the marketing carrier
	CarrierCode string `json:"carrierCode"`

	// Number is the flight number within the carrier
	Number string `json:"number,omitempty"`

	Aircraft Aircraft `json:"aircraft"`

	// Operating identifies the operating carrier when it differs from the
	// marketing carrier; optional in the API payload
	Operating *Operating `json:"operating,omitempty"`

	// Duration is the segment-level ISO-8601-like duration string
	Duration string `json:"duration,omitempty"`

	// ID is the segment identifier referenced by fare details
	ID string `json:"id,omitempty"`

	// NumberOfStops counts technical stops within the segment
	NumberOfStops int `json:"numberOfStops,omitempty"`

	BlacklistedInEU bool `json:"blacklistedInEU,omitempty"`
}

// Endpoint is an airport plus a scheduled time.
type Endpoint struct {
	// IataCode is the IATA airport code (e.g., "LHR")
	IataCode string `json:"iataCode"`

	// Terminal is the terminal identifier, when known
	Terminal string `json:"terminal,omitempty"`

	// At is the scheduled time as an ISO-8601 timestamp
	At string `json:"at"`
}

// Aircraft identifies the equipment operating a segment.
type Aircraft struct {
	Code string `json:"code"`
}

// Operating identifies the operating carrier of a segment.
type Operating struct {
	CarrierCode string `json:"carrierCode"`
}

// TravelerPricing is the fare breakdown for a single traveler.
type TravelerPricing struct {
	TravelerID   string        `json:"travelerId"`
	FareOption   string        `json:"fareOption,omitempty"`
	TravelerType string        `json:"travelerType,omitempty"`
	Price        TravelerPrice `json:"price"`

	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment,omitempty"`
}

// TravelerPrice is the per-traveler price component.
type TravelerPrice struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
	Base     string `json:"base,omitempty"`
}

// FareDetail describes the fare applied to one segment for one traveler.
type FareDetail struct {
	SegmentID string `json:"segmentId"`
	Cabin     string `json:"cabin,omitempty"`
	FareBasis string `json:"fareBasis,omitempty"`
	Class     string `json:"class,omitempty"`

	IncludedCheckedBags *CheckedBags `json:"includedCheckedBags,omitempty"`
	IncludedCabinBags   *CabinBags   `json:"includedCabinBags,omitempty"`
}

// CheckedBags is the checked baggage allowance for a fare detail.
type CheckedBags struct {
	Quantity   int    `json:"quantity,omitempty"`
	Weight     int    `json:"weight,omitempty"`
	WeightUnit string `json:"weightUnit,omitempty"`
}

// CabinBags is the cabin baggage allowance for a fare detail.
type CabinBags struct {
	Quantity int `json:"quantity,omitempty"`
}

// Duration string patterns. Hours-and-minutes is matched anywhere in the
// string; the single-component forms must match the whole string.
var (
	durationPattern    = regexp.MustCompile(`PT(\d+)H(\d+)M`)
	hoursOnlyPattern   = regexp.MustCompile(`^PT(\d+)H$`)
	minutesOnlyPattern = regexp.MustCompile(`^PT(\d+)M$`)
)

// ParseDurationMinutes converts an ISO-8601-like duration string ("PT5H30M",
// "PT2H", "PT45M") to total minutes. Strings that match none of the accepted
// forms contribute zero minutes; malformed durations are tolerated rather
// than rejected.
func ParseDurationMinutes(duration string) int {
	if m := durationPattern.FindStringSubmatch(duration); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes
	}
	if m := hoursOnlyPattern.FindStringSubmatch(duration); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return hours * 60
	}
	if m := minutesOnlyPattern.FindStringSubmatch(duration); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes
	}
	return 0
}

// FormatDurationMinutes renders total minutes as a human-readable duration
// (e.g., "5h 30m", "2h", "45m").
func FormatDurationMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}

// TotalPrice parses the offer's total price as a float. A non-numeric total
// yields NaN; callers at the pipeline boundary must exclude such offers
// before any arithmetic (see pipeline.SanitizeOffers).
func (o *Offer) TotalPrice() float64 {
	v, err := strconv.ParseFloat(o.Price.Total, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// HasValidPrice reports whether the offer's total price parses to a
// non-negative finite number.
func (o *Offer) HasValidPrice() bool {
	v, err := strconv.ParseFloat(o.Price.Total, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// TotalStops counts connections across all itineraries. Each itinerary with
// N segments contributes N-1 connections, floored at zero.
func (o *Offer) TotalStops() int {
	total := 0
	for _, it := range o.Itineraries {
		if n := len(it.Segments) - 1; n > 0 {
			total += n
		}
	}
	return total
}

// TotalDurationMinutes sums the parsed itinerary durations in minutes.
// Itineraries with malformed duration strings contribute zero.
func (o *Offer) TotalDurationMinutes() int {
	total := 0
	for _, it := range o.Itineraries {
		total += ParseDurationMinutes(it.Duration)
	}
	return total
}

// PrimaryAirline returns the carrier code of the first segment of the first
// itinerary, which classifies the offer for filtering and display.
// Returns an empty string when the offer has no segments.
func (o *Offer) PrimaryAirline() string {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return ""
	}
	return o.Itineraries[0].Segments[0].CarrierCode
}

// ConnectionAirports returns the arrival airport of every non-final segment
// across all itineraries, in encounter order with duplicates removed
// (first occurrence kept).
func (o *Offer) ConnectionAirports() []string {
	var connections []string
	seen := make(map[string]struct{})

	for _, it := range o.Itineraries {
		if len(it.Segments) < 2 {
			continue
		}
		for _, seg := range it.Segments[:len(it.Segments)-1] {
			code := seg.Arrival.IataCode
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			connections = append(connections, code)
		}
	}
	return connections
}
