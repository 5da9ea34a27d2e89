package domain

import (
	"time"
)

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Booking is the checkout snapshot of an event and the seats picked for it.
type Booking struct {
	Event     Event     `json:"event"`
	Seats     []Seat    `json:"seats"`
	Subtotal  float64   `json:"subtotal"`
	Discount  float64   `json:"discount"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"timestamp"`
}

func (b Booking) Totals() Totals {
	return Totals{Subtotal: b.Subtotal, Discount: b.Discount, Total: b.Total}
}

func (b Booking) Validate() error {
	if b.Event.ID == "" {
		return Validationf("booking has no event")
	}
	if len(b.Seats) == 0 {
		return Validationf("booking has no seats")
	}
	return nil
}

type PurchasedTicket struct {
	ID string `json:"id"`
	Booking
	PurchasedAt time.Time `json:"purchaseDate"`
}
