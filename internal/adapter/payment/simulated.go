// Package payment holds the stand-in payment gateway. It never contacts a
// processor: it waits, then approves.
package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/ports"
)

type Simulated struct {
	delay time.Duration
	fail  error
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{delay: delay}
}

// FailWith makes every later charge decline with reason.
func (g *Simulated) FailWith(reason error) *Simulated {
	g.fail = reason
	return g
}

func (g *Simulated) Charge(ctx context.Context, booking *domain.Booking, details ports.PaymentDetails) error {
	if missing := missingFields(details); len(missing) > 0 {
		return domain.Validationf("missing payment fields: %s", strings.Join(missing, ", "))
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if g.fail != nil {
		return fmt.Errorf("%w: %v", domain.ErrPaymentDeclined, g.fail)
	}
	return nil
}

func missingFields(d ports.PaymentDetails) []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"cardholder_name", d.CardholderName},
		{"card_number", d.CardNumber},
		{"expiry", d.Expiry},
		{"cvv", d.CVV},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
