package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Helper functions for creating pointer values
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// stopsOffer builds an offer with the given number of connections on a
// single itinerary.
func stopsOffer(id string, stops int, price string, carrier string) Offer {
	airports := []string{"LHR"}
	vias := []string{"CDG", "AMS", "FRA", "MAD"}
	for i := 0; i < stops; i++ {
		airports = append(airports, vias[i])
	}
	airports = append(airports, "JFK")
	return makeOffer(id, price, "USD", makeItinerary("PT9H", carrier, airports...))
}

func TestSortOptionIsValid(t *testing.T) {
	tests := []struct {
		option SortOption
		want   bool
	}{
		{option: SortByBest, want: true},
		{option: SortByPrice, want: true},
		{option: SortByFastest, want: true},
		{option: SortOption("price"), want: false},
		{option: SortOption(""), want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.option), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.option.IsValid())
		})
	}
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortByFastest, ParseSortOption("fastest"))
	assert.Equal(t, SortByPrice, ParseSortOption("price_high"))
	assert.Equal(t, SortByBest, ParseSortOption(""))
	assert.Equal(t, SortByBest, ParseSortOption("nonsense"))
}

func TestFiltersMatches_Stops(t *testing.T) {
	tests := []struct {
		name   string
		stops  *int
		offer  Offer
		wantOK bool
	}{
		{name: "nil matches anything", stops: nil, offer: stopsOffer("1", 3, "100", "BA"), wantOK: true},
		{name: "nonstop exact match", stops: intPtr(0), offer: stopsOffer("2", 0, "100", "BA"), wantOK: true},
		{name: "nonstop rejects one stop", stops: intPtr(0), offer: stopsOffer("3", 1, "100", "BA"), wantOK: false},
		{name: "one stop exact match", stops: intPtr(1), offer: stopsOffer("4", 1, "100", "BA"), wantOK: true},
		{name: "one stop rejects two stops", stops: intPtr(1), offer: stopsOffer("5", 2, "100", "BA"), wantOK: false},
		{name: "two means two or more, exact", stops: intPtr(2), offer: stopsOffer("6", 2, "100", "BA"), wantOK: true},
		{name: "two means two or more, three", stops: intPtr(2), offer: stopsOffer("7", 3, "100", "BA"), wantOK: true},
		{name: "two rejects one stop", stops: intPtr(2), offer: stopsOffer("8", 1, "100", "BA"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Filters{Stops: tt.stops}
			assert.Equal(t, tt.wantOK, f.Matches(tt.offer))
		})
	}
}

func TestFiltersMatches_PriceRange(t *testing.T) {
	offer := stopsOffer("1", 0, "250.00", "BA")

	tests := []struct {
		name   string
		min    *float64
		max    *float64
		wantOK bool
	}{
		{name: "no bounds", min: nil, max: nil, wantOK: true},
		{name: "inside range", min: floatPtr(100), max: floatPtr(300), wantOK: true},
		{name: "exactly at max is kept", min: nil, max: floatPtr(250), wantOK: true},
		{name: "exactly at min is kept", min: floatPtr(250), max: nil, wantOK: true},
		{name: "above max", min: nil, max: floatPtr(249.99), wantOK: false},
		{name: "below min", min: floatPtr(250.01), max: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Filters{PriceRange: PriceRangeFilter{Min: tt.min, Max: tt.max}}
			assert.Equal(t, tt.wantOK, f.Matches(offer))
		})
	}
}

func TestFiltersMatches_Airlines(t *testing.T) {
	ba := stopsOffer("1", 0, "100", "BA")
	af := stopsOffer("2", 0, "100", "AF")

	empty := &Filters{Airlines: nil}
	assert.True(t, empty.Matches(ba))
	assert.True(t, empty.Matches(af))

	onlyBA := &Filters{Airlines: []string{"BA"}}
	assert.True(t, onlyBA.Matches(ba))
	assert.False(t, onlyBA.Matches(af))

	both := &Filters{Airlines: []string{"AF", "BA"}}
	assert.True(t, both.Matches(ba))
	assert.True(t, both.Matches(af))
}

func TestFiltersMatches_Conjunction(t *testing.T) {
	offer := stopsOffer("1", 1, "250", "BA")

	// All clauses pass.
	f := &Filters{
		Stops:      intPtr(1),
		PriceRange: PriceRangeFilter{Max: floatPtr(300)},
		Airlines:   []string{"BA"},
	}
	assert.True(t, f.Matches(offer))

	// One failing clause rejects the offer.
	f.Airlines = []string{"AF"}
	assert.False(t, f.Matches(offer))
}

func TestFiltersActiveCount(t *testing.T) {
	tests := []struct {
		name    string
		filters *Filters
		want    int
	}{
		{name: "nil filters", filters: nil, want: 0},
		{name: "empty filters", filters: &Filters{}, want: 0},
		{name: "stops only", filters: &Filters{Stops: intPtr(0)}, want: 1},
		{
			name:    "price range counts once",
			filters: &Filters{PriceRange: PriceRangeFilter{Min: floatPtr(1), Max: floatPtr(2)}},
			want:    1,
		},
		{
			name:    "each airline counts",
			filters: &Filters{Airlines: []string{"BA", "AF", "KL"}},
			want:    3,
		},
		{
			name: "everything active",
			filters: &Filters{
				Stops:      intPtr(2),
				PriceRange: PriceRangeFilter{Max: floatPtr(500)},
				Airlines:   []string{"BA", "AF"},
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.ActiveCount())
		})
	}
}

func TestFiltersIsIdentity(t *testing.T) {
	var nilFilters *Filters
	assert.True(t, nilFilters.IsIdentity())
	assert.True(t, (&Filters{}).IsIdentity())
	assert.False(t, (&Filters{Stops: intPtr(0)}).IsIdentity())
	assert.False(t, (&Filters{Airlines: []string{"BA"}}).IsIdentity())
}
