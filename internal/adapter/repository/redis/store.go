// Package redis keeps tickets and the pending booking as JSON values in
// Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/srgjo27/eventflow/internal/core/domain"
)

const defaultPrefix = "eventflow"

type Store struct {
	client goredis.Cmdable
	prefix string
}

func NewStore(client goredis.Cmdable, prefix string) *Store {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) LoadTickets(ctx context.Context) ([]domain.PurchasedTicket, error) {
	var tickets []domain.PurchasedTicket
	found, err := s.get(ctx, s.ticketsKey(), &tickets)
	if err != nil || !found {
		return nil, err
	}
	return tickets, nil
}

func (s *Store) SaveTickets(ctx context.Context, tickets []domain.PurchasedTicket) error {
	if tickets == nil {
		tickets = []domain.PurchasedTicket{}
	}
	return s.set(ctx, s.ticketsKey(), tickets)
}

func (s *Store) LoadCurrentBooking(ctx context.Context) (*domain.Booking, error) {
	var booking domain.Booking
	found, err := s.get(ctx, s.bookingKey(), &booking)
	if err != nil || !found {
		return nil, err
	}
	return &booking, nil
}

func (s *Store) SaveCurrentBooking(ctx context.Context, booking *domain.Booking) error {
	return s.set(ctx, s.bookingKey(), booking)
}

func (s *Store) ClearCurrentBooking(ctx context.Context) error {
	return s.client.Del(ctx, s.bookingKey()).Err()
}

func (s *Store) get(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("invalid value at %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) set(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, payload, 0).Err()
}

func (s *Store) ticketsKey() string {
	return s.prefix + ":purchased_tickets"
}

func (s *Store) bookingKey() string {
	return s.prefix + ":current_booking"
}
