package ports

import (
	"context"

	"github.com/srgjo27/eventflow/internal/core/domain"
)

type EventCatalog interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
}

type TicketStore interface {
	LoadTickets(ctx context.Context) ([]domain.PurchasedTicket, error)
	SaveTickets(ctx context.Context, tickets []domain.PurchasedTicket) error
}

// BookingStore holds the single booking awaiting checkout. LoadCurrentBooking
// returns nil, nil when there is none.
type BookingStore interface {
	LoadCurrentBooking(ctx context.Context) (*domain.Booking, error)
	SaveCurrentBooking(ctx context.Context, booking *domain.Booking) error
	ClearCurrentBooking(ctx context.Context) error
}

type Storage interface {
	TicketStore
	BookingStore
}
