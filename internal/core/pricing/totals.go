package pricing

import "github.com/srgjo27/eventflow/internal/core/domain"

// ComputeTotals prices a selection. Groups of at least policy.MinSeats get
// policy.Rate off the subtotal.
func ComputeTotals(seats []domain.Seat, policy DiscountPolicy) domain.Totals {
	var subtotal float64
	for _, seat := range seats {
		subtotal += seat.Price
	}

	var discount float64
	if len(seats) > 0 && len(seats) >= policy.MinSeats {
		discount = subtotal * policy.Rate
	}

	return domain.Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
	}
}
