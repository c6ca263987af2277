package pipeline

import (
	"github.com/flight-offers/offer-pipeline-service/internal/domain"
	"github.com/flight-offers/offer-pipeline-service/pkg/currency"
)

// histogramBuckets is the maximum number of price buckets for the chart.
const histogramBuckets = 5

// greatDealThreshold marks a "great deal": priced below this fraction of the
// set's average.
const greatDealThreshold = 0.8

// ComputePriceStats derives the price report for a chart from an offer set:
// headline stats, a split trend, deal counts, and a fixed-bucket histogram.
//
// The statistics operate on whatever set is passed in, typically the
// filtered-and-sorted result. The trend in particular splits the sequence in
// the order given; it is a simple first-half versus second-half comparison,
// not a time-series regression.
//
// Empty input yields zero-valued stats with currency "USD", a flat upward
// trend, zero deals, and an empty histogram.
func ComputePriceStats(offers []domain.Offer) domain.PriceReport {
	if len(offers) == 0 {
		return domain.PriceReport{
			Stats:     domain.PriceStats{Currency: "USD"},
			Trend:     domain.PriceTrend{Percentage: 0, IsUp: true},
			Deals:     domain.DealsInfo{},
			Histogram: []domain.PriceBucket{},
		}
	}

	prices := make([]float64, len(offers))
	for i, offer := range offers {
		prices[i] = offer.TotalPrice()
	}

	cur := offers[0].Price.Currency
	if cur == "" {
		cur = "USD"
	}

	stats := computeStats(prices, cur)

	return domain.PriceReport{
		Stats:     stats,
		Trend:     computeTrend(prices),
		Deals:     computeDeals(prices, stats),
		Histogram: computeHistogram(offers, prices, stats),
	}
}

// computeStats finds the lowest, highest and mean price.
func computeStats(prices []float64, cur string) domain.PriceStats {
	lowest := prices[0]
	highest := prices[0]
	sum := 0.0

	for _, p := range prices {
		if p < lowest {
			lowest = p
		}
		if p > highest {
			highest = p
		}
		sum += p
	}

	return domain.PriceStats{
		Lowest:   lowest,
		Average:  sum / float64(len(prices)),
		Highest:  highest,
		Currency: cur,
	}
}

// computeTrend compares the mean of the first half of the price sequence
// against the mean of the second half. Fewer than two prices yields a flat
// upward trend, as does a zero first-half mean (the relative change is
// undefined there and must not leak NaN or Inf into the output).
func computeTrend(prices []float64) domain.PriceTrend {
	if len(prices) < 2 {
		return domain.PriceTrend{Percentage: 0, IsUp: true}
	}

	mid := len(prices) / 2
	firstMean := mean(prices[:mid])
	secondMean := mean(prices[mid:])

	if firstMean == 0 {
		return domain.PriceTrend{Percentage: 0, IsUp: secondMean > 0}
	}

	change := (secondMean - firstMean) / firstMean * 100
	percentage := change
	if percentage < 0 {
		percentage = -percentage
	}

	return domain.PriceTrend{
		Percentage: percentage,
		IsUp:       secondMean > firstMean,
	}
}

// computeDeals counts offers priced below the average ("deals") and below
// 80% of the average ("great deals"). MaxSavings is the distance from the
// average down to the cheapest offer.
func computeDeals(prices []float64, stats domain.PriceStats) domain.DealsInfo {
	deals := 0
	greatDeals := 0

	for _, p := range prices {
		if p < stats.Average {
			deals++
		}
		if p < stats.Average*greatDealThreshold {
			greatDeals++
		}
	}

	return domain.DealsInfo{
		DealCount:  deals,
		GreatDeals: greatDeals,
		MaxSavings: stats.Average - stats.Lowest,
	}
}

// computeHistogram buckets prices into min(5, n) equal-width ranges between
// the lowest and highest price. Buckets are half-open [lower, upper) except
// the last, which is closed on both ends so the maximum-priced offer always
// lands somewhere. When all prices are equal the width is zero and every
// offer collapses into the last (degenerate) bucket; this is the intended
// edge-case behavior, not a defect.
func computeHistogram(offers []domain.Offer, prices []float64, stats domain.PriceStats) []domain.PriceBucket {
	bucketCount := histogramBuckets
	if len(offers) < bucketCount {
		bucketCount = len(offers)
	}

	width := (stats.Highest - stats.Lowest) / float64(bucketCount)
	buckets := make([]domain.PriceBucket, 0, bucketCount)

	for i := 0; i < bucketCount; i++ {
		lower := stats.Lowest + float64(i)*width
		upper := stats.Lowest + float64(i+1)*width
		last := i == bucketCount-1

		ids := []string{}
		sum := 0.0
		count := 0
		for j, p := range prices {
			var in bool
			if last {
				in = p >= lower && p <= upper
			} else {
				in = p >= lower && p < upper
			}
			if in {
				ids = append(ids, offers[j].ID)
				sum += p
				count++
			}
		}

		// Empty buckets report their midpoint so the chart line stays continuous.
		bucketPrice := (lower + upper) / 2
		if count > 0 {
			bucketPrice = sum / float64(count)
		}

		buckets = append(buckets, domain.PriceBucket{
			PriceRange: currency.Format(lower, stats.Currency) + "-" + currency.Format(upper, stats.Currency),
			Price:      bucketPrice,
			Count:      count,
			OfferIDs:   ids,
		})
	}

	return buckets
}

// mean computes the arithmetic mean of a non-empty slice.
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
