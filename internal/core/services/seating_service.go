package services

import (
	"context"
	"sync"

	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/ports"
	"github.com/srgjo27/eventflow/internal/core/pricing"
)

// Session is one visitor's view of an event: the seat map generated when the
// view opened and whatever they have picked on it since. A session has a
// single owner; it is not safe for concurrent use.
type Session struct {
	Event    *domain.Event
	Seats    *pricing.SeatMap
	discount pricing.DiscountPolicy
}

func NewSession(event *domain.Event, seats *pricing.SeatMap, discount pricing.DiscountPolicy) *Session {
	return &Session{Event: event, Seats: seats, discount: discount}
}

func (s *Session) Toggle(row, col int) (domain.Seat, error) {
	return s.Seats.Toggle(row, col)
}

func (s *Session) Selection() []domain.Seat {
	return s.Seats.Selection()
}

func (s *Session) Totals() domain.Totals {
	return s.Seats.Totals(s.discount)
}

type SeatingService struct {
	catalog   ports.EventCatalog
	discount  pricing.DiscountPolicy
	mu        sync.Mutex
	generator *pricing.Generator
}

func NewSeatingService(catalog ports.EventCatalog, generator *pricing.Generator, discount pricing.DiscountPolicy) *SeatingService {
	return &SeatingService{
		catalog:   catalog,
		discount:  discount,
		generator: generator,
	}
}

// Open starts a session on eventID with a freshly generated seat map.
func (s *SeatingService) Open(ctx context.Context, eventID string) (*Session, error) {
	event, err := s.catalog.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	seats, err := s.generator.Generate(*event)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return NewSession(event, seats, s.discount), nil
}
