// Package memory keeps tickets and the pending booking in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/srgjo27/eventflow/internal/core/domain"
)

type Store struct {
	mu      sync.RWMutex
	tickets []domain.PurchasedTicket
	current *domain.Booking
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) LoadTickets(ctx context.Context) ([]domain.PurchasedTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneTickets(s.tickets), nil
}

func (s *Store) SaveTickets(ctx context.Context, tickets []domain.PurchasedTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = cloneTickets(tickets)
	return nil
}

func (s *Store) LoadCurrentBooking(ctx context.Context) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, nil
	}
	booking := cloneBooking(*s.current)
	return &booking, nil
}

func (s *Store) SaveCurrentBooking(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if booking == nil {
		s.current = nil
		return nil
	}
	b := cloneBooking(*booking)
	s.current = &b
	return nil
}

func (s *Store) ClearCurrentBooking(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	return nil
}

// Stored values never share a Seats backing array with callers.
func cloneTickets(tickets []domain.PurchasedTicket) []domain.PurchasedTicket {
	out := make([]domain.PurchasedTicket, len(tickets))
	for i, t := range tickets {
		t.Booking = cloneBooking(t.Booking)
		out[i] = t
	}
	return out
}

func cloneBooking(b domain.Booking) domain.Booking {
	if b.Seats != nil {
		seats := make([]domain.Seat, len(b.Seats))
		copy(seats, b.Seats)
		b.Seats = seats
	}
	return b
}
