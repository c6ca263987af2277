// Package mock provides test doubles for the offer pipeline.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific results).
package mock

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/flight-offers/offer-pipeline-service/internal/domain"
	"github.com/flight-offers/offer-pipeline-service/internal/pipeline"
)

// Processor is a configurable mock implementation of pipeline.Processor.
// It supports configurable delays, errors, and results for testing
// various scenarios including timeouts and error mapping.
type Processor struct {
	result    *domain.ProcessResult
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewProcessor creates a new mock processor.
// The processor is configured using the builder pattern methods.
func NewProcessor() *Processor {
	return &Processor{}
}

// WithResult configures the processor to return the given result.
func (p *Processor) WithResult(result *domain.ProcessResult) *Processor {
	p.result = result
	return p
}

// WithError configures the processor to return the given error.
func (p *Processor) WithError(err error) *Processor {
	p.err = err
	return p
}

// WithDelay configures the processor to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (p *Processor) WithDelay(d time.Duration) *Processor {
	p.delay = d
	return p
}

// Process implements pipeline.Processor.
// It respects context cancellation, applies the configured delay,
// and returns the configured result or error.
func (p *Processor) Process(ctx context.Context, req pipeline.Request) (*domain.ProcessResult, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	if p.result != nil {
		return p.result, nil
	}
	return &domain.ProcessResult{Offers: []domain.Offer{}}, nil
}

// CallCount returns the number of times Process was called.
func (p *Processor) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Processor) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Processor implements pipeline.Processor at compile time.
var _ pipeline.Processor = (*Processor)(nil)

// sampleCarriers cycles through the airline codes used by SampleOffers.
var sampleCarriers = []string{"BA", "AF", "SQ"}

// SampleOffers returns a slice of sample offers for testing. Prices ascend in
// fixed steps, airlines cycle through three carriers, and every second offer
// has a one-stop itinerary, so filter and sort assertions stay predictable.
func SampleOffers(count int) []domain.Offer {
	offers := make([]domain.Offer, count)

	for i := 0; i < count; i++ {
		code := sampleCarriers[i%len(sampleCarriers)]
		price := 200.0 + float64(i)*50.0
		minutes := 330 + i*15

		segments := []domain.Segment{
			{
				Departure:   domain.Endpoint{IataCode: "JFK", At: "2026-03-01T08:00:00"},
				Arrival:     domain.Endpoint{IataCode: "LHR", At: "2026-03-01T16:00:00"},
				CarrierCode: code,
				Number:      strconv.Itoa(100 + i),
				Aircraft:    domain.Aircraft{Code: "777"},
			},
		}
		if i%2 == 1 {
			segments[0].Arrival = domain.Endpoint{IataCode: "CDG", At: "2026-03-01T14:00:00"}
			segments = append(segments, domain.Segment{
				Departure:   domain.Endpoint{IataCode: "CDG", At: "2026-03-01T15:30:00"},
				Arrival:     domain.Endpoint{IataCode: "LHR", At: "2026-03-01T16:30:00"},
				CarrierCode: code,
				Number:      strconv.Itoa(200 + i),
				Aircraft:    domain.Aircraft{Code: "320"},
			})
		}

		offers[i] = domain.Offer{
			ID:     strconv.Itoa(i + 1),
			Type:   "flight-offer",
			Source: "GDS",
			OneWay: true,
			Itineraries: []domain.Itinerary{
				{
					Duration: formatDuration(minutes),
					Segments: segments,
				},
			},
			Price: domain.Price{
				Currency: "USD",
				Total:    strconv.FormatFloat(price, 'f', 2, 64),
			},
			NumberOfBookableSeats: 5,
		}
	}

	return offers
}

// SampleDictionaries returns lookup tables covering the codes used by
// SampleOffers.
func SampleDictionaries() *domain.Dictionaries {
	return &domain.Dictionaries{
		Carriers: map[string]string{
			"BA": "BRITISH AIRWAYS",
			"AF": "AIR FRANCE",
			"SQ": "SINGAPORE AIRLINES",
		},
		Aircraft: map[string]string{
			"777": "BOEING 777",
			"320": "AIRBUS A320",
		},
		Currencies: map[string]string{
			"USD": "US DOLLAR",
		},
	}
}

// formatDuration renders total minutes in the upstream API's duration form.
func formatDuration(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return "PT" + strconv.Itoa(hours) + "H" + strconv.Itoa(mins) + "M"
	case hours > 0:
		return "PT" + strconv.Itoa(hours) + "H"
	default:
		return "PT" + strconv.Itoa(mins) + "M"
	}
}
