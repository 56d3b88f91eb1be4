// Package analysis selects and summarizes normalized products for reporting.
package analysis

import (
	"sort"

	"bestsellers/internal/model"
)

// Summary describes a batch of products. Price and rating statistics only
// cover products where the value is known.
type Summary struct {
	Count      int
	Priced     int
	Rated      int
	MinPrice   float64
	MaxPrice   float64
	MeanPrice  float64
	MeanRating float64
}

// TopByReviews returns the n most reviewed products. Ties keep their
// original order.
func TopByReviews(products []model.Product, n int) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReviewCount > sorted[j].ReviewCount
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// UnderPrice keeps products with a known price below maxPrice.
func UnderPrice(products []model.Product, maxPrice float64) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.Price != nil && *p.Price < maxPrice {
			out = append(out, p)
		}
	}
	return out
}

func Rated(products []model.Product) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.Rating != nil {
			out = append(out, p)
		}
	}
	return out
}

func Summarize(products []model.Product) Summary {
	s := Summary{Count: len(products)}
	var priceSum, ratingSum float64
	for _, p := range products {
		if p.Price != nil {
			v := *p.Price
			if s.Priced == 0 || v < s.MinPrice {
				s.MinPrice = v
			}
			if s.Priced == 0 || v > s.MaxPrice {
				s.MaxPrice = v
			}
			priceSum += v
			s.Priced++
		}
		if p.Rating != nil {
			ratingSum += *p.Rating
			s.Rated++
		}
	}
	if s.Priced > 0 {
		s.MeanPrice = priceSum / float64(s.Priced)
	}
	if s.Rated > 0 {
		s.MeanRating = ratingSum / float64(s.Rated)
	}
	return s
}
