// Package cleaner turns scraped product text into typed values.
//
// Every field is cleaned on its own and a bad value never stops the batch.
// Rank and review count fall back to 0; price and rating fall back to nil so
// that "no price" stays distinguishable from a price of zero.
package cleaner

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"bestsellers/internal/model"
	"bestsellers/internal/observability"
)

var reNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

const maxRating = 5.0

// Normalize returns one Product per raw record, in the same order.
func Normalize(records []model.RawProduct) []model.Product {
	out := make([]model.Product, 0, len(records))
	for _, r := range records {
		out = append(out, NormalizeOne(r))
	}
	return out
}

func NormalizeOne(r model.RawProduct) model.Product {
	return model.Product{
		Rank:        Rank(r.Rank),
		Title:       r.Title,
		Price:       Price(r.Price),
		Rating:      Rating(r.Rating),
		ReviewCount: ReviewCount(r.ReviewCount),
		URL:         r.URL,
	}
}

// Rank parses "#15" or "15". Anything else is 0.
func Rank(s string) int {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	return nonNegativeInt("rank", s)
}

// Price takes the first number in s after dropping thousands separators,
// so "$1,234.56" is 1234.56 and "$10.99 - $20.99" is 10.99.
func Price(s string) *float64 {
	m := reNumber.FindString(strings.ReplaceAll(s, ",", ""))
	if m == "" {
		observability.NormalizeDefaults.WithLabelValues("price").Inc()
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		observability.NormalizeDefaults.WithLabelValues("price").Inc()
		return nil
	}
	return &v
}

// ReviewCount parses "2,348" as 2348.
func ReviewCount(s string) int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	return nonNegativeInt("review_count", s)
}

// Rating reads the leading number of texts like "4.3 out of 5 stars".
func Rating(s string) *float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		observability.NormalizeDefaults.WithLabelValues("rating").Inc()
		return nil
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > maxRating {
		observability.NormalizeDefaults.WithLabelValues("rating").Inc()
		return nil
	}
	return &v
}

func nonNegativeInt(field, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		observability.NormalizeDefaults.WithLabelValues(field).Inc()
		return 0
	}
	return n
}
