package services

import (
	"math"

	"edinburgh-events/internal/models"
)

// Discount percentages are always shown inside this band. Clamping real
// discounts and seeding synthetic ones into the same range is merchandising
// policy: every listing shows a meaningful but not exaggerated saving.
const (
	minDiscountPct = 10
	maxDiscountPct = 40
)

// DiscountQuote is the per-unit pricing attached to a cart line at first add
type DiscountQuote struct {
	FinalPrice   float64 `json:"finalPrice"`
	ComparePrice float64 `json:"comparePrice"`
	DiscountPct  int     `json:"discountPct"`
	SaveAmount   float64 `json:"saveAmount"`
}

// seededPercent derives a stable integer percentage in
// [minDiscountPct, maxDiscountPct] from the event id alone. The same id
// always yields the same percentage, across sessions and processes; no real
// randomness is involved.
func seededPercent(id string) int {
	var hash uint32
	for _, b := range []byte(id) {
		hash = hash*31 + uint32(b)
	}
	span := uint32(maxDiscountPct - minDiscountPct + 1)
	return minDiscountPct + int(hash%span)
}

// ComputeDiscount derives the displayed pricing for an event. finalPrice is
// the provider's authoritative current price. When a real compare-at price
// above finalPrice is known, the true percentage is used but clamped into the
// display band; otherwise the percentage is seeded from the id. The compare
// price is then back-computed from the chosen percentage, so the displayed
// numbers are always self-consistent.
func ComputeDiscount(id string, finalPrice float64, compareAt *float64) DiscountQuote {
	var pct int
	if compareAt != nil && *compareAt > finalPrice && *compareAt > 0 {
		raw := int(math.Round((*compareAt - finalPrice) / *compareAt * 100))
		pct = clampPct(raw)
	} else {
		pct = seededPercent(id)
	}

	comparePrice := finalPrice / (1 - float64(pct)/100)
	return DiscountQuote{
		FinalPrice:   finalPrice,
		ComparePrice: comparePrice,
		DiscountPct:  pct,
		SaveAmount:   comparePrice - finalPrice,
	}
}

// QuoteForEvent computes the discount for a normalized event. The per-unit
// final price is the minimum listed price, falling back to the maximum; free
// or unpriced events quote at zero. Normalized events carry no compare-at
// field, so the percentage is always seeded.
func QuoteForEvent(e *models.Event) DiscountQuote {
	var finalPrice float64
	if e.Price.Min != nil {
		finalPrice = *e.Price.Min
	} else if e.Price.Max != nil {
		finalPrice = *e.Price.Max
	}
	return ComputeDiscount(e.ID, finalPrice, nil)
}

func clampPct(pct int) int {
	if pct < minDiscountPct {
		return minDiscountPct
	}
	if pct > maxDiscountPct {
		return maxDiscountPct
	}
	return pct
}

// round2 rounds money amounts to two decimals before they are frozen onto a
// cart line
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
