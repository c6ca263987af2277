package domain

// SortOption defines the available sorting policies for offer results.
type SortOption string

// Available sort options. The option names are part of the public API and
// are kept verbatim for compatibility with existing clients.
const (
	// SortByBest sorts by price per minute of travel, ascending (default)
	SortByBest SortOption = "best"

	// SortByPrice sorts by total price ascending (cheapest first).
	// The "price_high" name is historical; the behavior has always been
	// cheapest-first and is preserved as-is.
	SortByPrice SortOption = "price_high"

	// SortByFastest sorts by total duration ascending (shortest first)
	SortByFastest SortOption = "fastest"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByBest, SortByPrice, SortByFastest:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByBest if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByBest
}

// Filters defines the user-selected filter criteria for an offer list.
// The zero value (and a value with all fields unset) is the identity filter.
type Filters struct {
	// Stops constrains the total connection count:
	// nil = any, 0 = nonstop, 1 = exactly one stop, 2 = two or more stops.
	Stops *int `json:"stops"`

	// PriceRange constrains the total price; both bounds are inclusive
	PriceRange PriceRangeFilter `json:"priceRange"`

	// Airlines restricts results to offers whose primary airline is in the
	// list. An empty list means no airline restriction.
	Airlines []string `json:"airlines"`
}

// PriceRangeFilter is an inclusive price window. A nil bound is unset.
type PriceRangeFilter struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// TwoOrMoreStops is the sentinel stops value meaning "two or more".
const TwoOrMoreStops = 2

// Matches checks if an offer satisfies all filter clauses (conjunctive).
// The airline clause compares primary airline codes exactly; upstream
// carrier codes are already uppercase IATA codes.
func (f *Filters) Matches(offer Offer) bool {
	if f == nil {
		return true
	}

	if f.Stops != nil {
		stops := offer.TotalStops()
		if *f.Stops == TwoOrMoreStops {
			if stops < TwoOrMoreStops {
				return false
			}
		} else if stops != *f.Stops {
			return false
		}
	}

	if f.PriceRange.Min != nil && offer.TotalPrice() < *f.PriceRange.Min {
		return false
	}
	if f.PriceRange.Max != nil && offer.TotalPrice() > *f.PriceRange.Max {
		return false
	}

	if len(f.Airlines) > 0 {
		airline := offer.PrimaryAirline()
		found := false
		for _, code := range f.Airlines {
			if code == airline {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// ActiveCount returns the number of active filter selections, counting each
// selected airline individually. Used by UI layers for filter badges.
func (f *Filters) ActiveCount() int {
	if f == nil {
		return 0
	}

	count := 0
	if f.Stops != nil {
		count++
	}
	if f.PriceRange.Min != nil || f.PriceRange.Max != nil {
		count++
	}
	count += len(f.Airlines)
	return count
}

// IsIdentity reports whether applying the filter would keep every offer.
func (f *Filters) IsIdentity() bool {
	if f == nil {
		return true
	}
	return f.Stops == nil &&
		f.PriceRange.Min == nil &&
		f.PriceRange.Max == nil &&
		len(f.Airlines) == 0
}
