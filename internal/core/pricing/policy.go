// Package pricing generates seat maps for an event and prices the seats a
// visitor picks from them.
package pricing

const (
	DefaultReserveProbability = 0.2
	DefaultDiscountMinSeats   = 5
	DefaultDiscountRate       = 0.10

	// RowPremium is added to the base price multiplier for every row between
	// a seat and the back of the house.
	RowPremium = 0.1
)

type InventoryPolicy struct {
	// ReserveProbability is the chance that a seat is already taken when
	// the map is generated.
	ReserveProbability float64

	// Seed makes generation reproducible when non-zero.
	Seed uint64

	// StableMaps derives the random stream from the event id, so every
	// generation for the same event yields the same map.
	StableMaps bool
}

type DiscountPolicy struct {
	MinSeats int
	Rate     float64
}

func DefaultInventoryPolicy() InventoryPolicy {
	return InventoryPolicy{ReserveProbability: DefaultReserveProbability}
}

func DefaultDiscountPolicy() DiscountPolicy {
	return DiscountPolicy{MinSeats: DefaultDiscountMinSeats, Rate: DefaultDiscountRate}
}
