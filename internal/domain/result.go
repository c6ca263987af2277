package domain

// Metadata summarizes an offer set for UI filter controls: which airlines
// appear in the results and the integer price bounds for a slider.
type Metadata struct {
	// AvailableAirlines lists the distinct primary airline codes,
	// sorted lexicographically ascending
	AvailableAirlines []string `json:"availableAirlines"`

	// PriceRange holds the outward-rounded integer price bounds
	PriceRange PriceBounds `json:"priceRange"`
}

// PriceBounds are integer display bounds: floor of the minimum price and
// ceiling of the maximum, so no real price falls outside the range.
type PriceBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// PriceStats holds the headline price figures of an offer set.
type PriceStats struct {
	Lowest   float64 `json:"lowest"`
	Average  float64 `json:"average"`
	Highest  float64 `json:"highest"`
	Currency string  `json:"currency"`
}

// PriceTrend compares the mean price of the first half of the offer sequence
// against the second half. This is a simple split-trend over the sequence as
// passed in, not a time-series regression.
type PriceTrend struct {
	// Percentage is the absolute relative change between half-means
	Percentage float64 `json:"percentage"`

	// IsUp is true when the second half's mean exceeds the first half's
	IsUp bool `json:"isUp"`
}

// DealsInfo counts offers priced below the set's average.
type DealsInfo struct {
	// DealCount is the number of offers strictly below the average price
	DealCount int `json:"dealCount"`

	// GreatDeals is the number of offers strictly below 80% of the average
	GreatDeals int `json:"greatDeals"`

	// MaxSavings is the gap between the average and the lowest price
	MaxSavings float64 `json:"maxSavings"`
}

// PriceBucket is one histogram bucket for the price-distribution chart.
// Buckets are half-open [lower, upper) except the last, which is closed on
// both ends so the maximum-priced offer is always included.
type PriceBucket struct {
	// PriceRange is a human-readable "lower-upper" label in the set currency
	PriceRange string `json:"priceRange"`

	// Price is the mean price of the bucket's members, or the bucket
	// midpoint when the bucket is empty
	Price float64 `json:"price"`

	// Count is the number of offers in the bucket
	Count int `json:"count"`

	// OfferIDs lists the member offer ids, enabling click-to-scroll
	// interactions in UI layers
	OfferIDs []string `json:"flightIds"`
}

// PriceReport bundles everything the price chart needs.
type PriceReport struct {
	Stats     PriceStats    `json:"stats"`
	Trend     PriceTrend    `json:"trend"`
	Deals     DealsInfo     `json:"dealsInfo"`
	Histogram []PriceBucket `json:"histogram"`
}

// PageInfo describes the pagination state of a processed result.
type PageInfo struct {
	// Page is the 1-based page number that was requested
	Page int `json:"page"`

	// PageSize is the fixed page size used for slicing
	PageSize int `json:"pageSize"`

	// TotalPages is ceil(totalItems / pageSize); 0 when there are no items
	TotalPages int `json:"totalPages"`

	// TotalItems is the number of offers after filtering
	TotalItems int `json:"totalItems"`
}

// ProcessResult is the full output of one pipeline run: the requested page
// of filtered-and-sorted offers plus the derived metadata and price report.
type ProcessResult struct {
	// Offers is the requested page slice of the filtered, sorted offer list
	Offers []Offer `json:"offers"`

	// Metadata is computed over the raw (unfiltered) offer set, so filter
	// controls keep their full ranges while filters are active
	Metadata Metadata `json:"metadata"`

	// Report is computed over the filtered-and-sorted set
	Report PriceReport `json:"report"`

	// Page describes the pagination of Offers
	Page PageInfo `json:"page"`

	// ActiveFilters is the number of active filter selections
	ActiveFilters int `json:"activeFilters"`

	// Rejected is the number of offers excluded for malformed prices
	Rejected int `json:"rejected,omitempty"`

	// ProcessingTimeMs is the pipeline execution time in milliseconds
	ProcessingTimeMs int64 `json:"processingTimeMs"`
}
