package http

import (
	"github.com/flight-offers/offer-pipeline-service/internal/domain"
	"github.com/flight-offers/offer-pipeline-service/pkg/currency"
)

// ProcessResponseDTO is the data transfer object for process responses.
// Derived fields (metadata, report, paging) keep their domain JSON shape;
// offers are enriched with display names and formatted strings so clients
// can render results without their own lookup tables.
type ProcessResponseDTO struct {
	Offers        []OfferDTO         `json:"offers"`
	Metadata      domain.Metadata    `json:"metadata"`
	Report        domain.PriceReport `json:"report"`
	Page          domain.PageInfo    `json:"page"`
	ActiveFilters int                `json:"activeFilters"`
	Rejected      int                `json:"rejected,omitempty"`

	ProcessingTimeMs int64 `json:"processingTimeMs"`
}

// OfferDTO is the data transfer object for a single processed offer.
type OfferDTO struct {
	ID          string         `json:"id"`
	Airline     AirlineDTO     `json:"airline"`
	Stops       int            `json:"stops"`
	Duration    DurationDTO    `json:"duration"`
	Price       PriceDTO       `json:"price"`
	Connections []string       `json:"connections"`
	Itineraries []ItineraryDTO `json:"itineraries"`

	NumberOfBookableSeats int  `json:"numberOfBookableSeats,omitempty"`
	OneWay                bool `json:"oneWay,omitempty"`
}

// AirlineDTO represents airline information.
type AirlineDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DurationDTO represents total travel duration.
type DurationDTO struct {
	TotalMinutes int    `json:"totalMinutes"`
	Formatted    string `json:"formatted"`
}

// PriceDTO represents price information with display strings.
type PriceDTO struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
	Compact   string  `json:"compact"`
}

// ItineraryDTO represents one direction of travel.
type ItineraryDTO struct {
	Duration        string       `json:"duration"`
	DurationMinutes int          `json:"durationMinutes"`
	Segments        []SegmentDTO `json:"segments"`
}

// SegmentDTO represents a single flight leg.
type SegmentDTO struct {
	From         string `json:"from"`
	To           string `json:"to"`
	DepartureAt  string `json:"departureAt"`
	ArrivalAt    string `json:"arrivalAt"`
	CarrierCode  string `json:"carrierCode"`
	CarrierName  string `json:"carrierName"`
	FlightNumber string `json:"flightNumber,omitempty"`
	Aircraft     string `json:"aircraft,omitempty"`
}

// ToProcessResponseDTO converts a domain ProcessResult to a
// ProcessResponseDTO, resolving display names through the dictionaries
// (nil dictionaries fall back to raw codes).
func ToProcessResponseDTO(result *domain.ProcessResult, dict *domain.Dictionaries) *ProcessResponseDTO {
	if result == nil {
		return nil
	}

	dto := &ProcessResponseDTO{
		Offers:           make([]OfferDTO, len(result.Offers)),
		Metadata:         result.Metadata,
		Report:           result.Report,
		Page:             result.Page,
		ActiveFilters:    result.ActiveFilters,
		Rejected:         result.Rejected,
		ProcessingTimeMs: result.ProcessingTimeMs,
	}

	for i, offer := range result.Offers {
		dto.Offers[i] = ToOfferDTO(&offer, dict)
	}

	return dto
}

// ToOfferDTO converts a domain Offer to an OfferDTO.
func ToOfferDTO(offer *domain.Offer, dict *domain.Dictionaries) OfferDTO {
	totalMinutes := offer.TotalDurationMinutes()
	amount := offer.TotalPrice()

	connections := offer.ConnectionAirports()
	if connections == nil {
		connections = []string{}
	}

	dto := OfferDTO{
		ID: offer.ID,
		Airline: AirlineDTO{
			Code: offer.PrimaryAirline(),
			Name: dict.AirlineName(offer.PrimaryAirline()),
		},
		Stops: offer.TotalStops(),
		Duration: DurationDTO{
			TotalMinutes: totalMinutes,
			Formatted:    domain.FormatDurationMinutes(totalMinutes),
		},
		Price: PriceDTO{
			Amount:    amount,
			Currency:  offer.Price.Currency,
			Formatted: currency.Format(amount, offer.Price.Currency),
			Compact:   currency.FormatCompact(amount, offer.Price.Currency),
		},
		Connections:           connections,
		Itineraries:           make([]ItineraryDTO, len(offer.Itineraries)),
		NumberOfBookableSeats: offer.NumberOfBookableSeats,
		OneWay:                offer.OneWay,
	}

	for i, itin := range offer.Itineraries {
		dto.Itineraries[i] = toItineraryDTO(&itin, dict)
	}

	return dto
}

func toItineraryDTO(itin *domain.Itinerary, dict *domain.Dictionaries) ItineraryDTO {
	dto := ItineraryDTO{
		Duration:        itin.Duration,
		DurationMinutes: domain.ParseDurationMinutes(itin.Duration),
		Segments:        make([]SegmentDTO, len(itin.Segments)),
	}

	for i, seg := range itin.Segments {
		dto.Segments[i] = SegmentDTO{
			From:         seg.Departure.IataCode,
			To:           seg.Arrival.IataCode,
			DepartureAt:  seg.Departure.At,
			ArrivalAt:    seg.Arrival.At,
			CarrierCode:  seg.CarrierCode,
			CarrierName:  dict.AirlineName(seg.CarrierCode),
			FlightNumber: seg.Number,
			Aircraft:     dict.AircraftName(seg.Aircraft.Code),
		}
	}

	return dto
}
