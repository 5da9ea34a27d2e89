package ports

import (
	"context"

	"github.com/srgjo27/eventflow/internal/core/domain"
)

// PaymentDetails are only checked for presence. Nothing here is charged.
type PaymentDetails struct {
	CardholderName string `json:"cardholder_name"`
	CardNumber     string `json:"card_number"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
}

type PaymentGateway interface {
	Charge(ctx context.Context, booking *domain.Booking, details PaymentDetails) error
}
