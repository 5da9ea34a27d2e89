package pricing_test

import (
	"testing"

	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/pricing"
	"github.com/stretchr/testify/assert"
)

func seatsAt(prices ...float64) []domain.Seat {
	seats := make([]domain.Seat, len(prices))
	for i, p := range prices {
		seats[i] = domain.Seat{Row: 0, Column: i, Status: domain.SeatSelected, Price: p}
	}
	return seats
}

func TestComputeTotals(t *testing.T) {
	policy := pricing.DefaultDiscountPolicy()

	tests := []struct {
		name     string
		seats    []domain.Seat
		subtotal float64
		discount float64
		total    float64
	}{
		{"empty", nil, 0, 0, 0},
		{"below threshold", seatsAt(60, 60, 60, 60), 240, 0, 240},
		{"at threshold", seatsAt(60, 60, 60, 60, 60), 300, 30, 270},
		{"mixed prices", seatsAt(125, 120, 55, 60, 70, 80), 510, 51, 459},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ComputeTotals(tt.seats, policy)

			assert.InDelta(t, tt.subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.discount, got.Discount, 1e-9)
			assert.InDelta(t, tt.total, got.Total, 1e-9)
			assert.Equal(t, got.Subtotal-got.Discount, got.Total)
		})
	}
}

func TestComputeTotals_Pure(t *testing.T) {
	seats := seatsAt(60, 60, 60, 60, 60)
	policy := pricing.DefaultDiscountPolicy()

	first := pricing.ComputeTotals(seats, policy)
	second := pricing.ComputeTotals(seats, policy)

	assert.Equal(t, first, second)
	assert.Equal(t, seatsAt(60, 60, 60, 60, 60), seats)
}

func TestComputeTotals_CustomPolicy(t *testing.T) {
	got := pricing.ComputeTotals(seatsAt(100, 100), pricing.DiscountPolicy{MinSeats: 2, Rate: 0.25})

	assert.InDelta(t, 50.0, got.Discount, 1e-9)
	assert.InDelta(t, 150.0, got.Total, 1e-9)
}
