// Package file persists tickets and the pending booking as JSON documents in
// a directory, one file per key, the way a browser keeps local storage.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/srgjo27/eventflow/internal/core/domain"
)

const (
	ticketsFile = "purchased_tickets.json"
	bookingFile = "current_booking.json"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir is the per-user config directory for the app.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "eventflow"), nil
}

func (s *Store) LoadTickets(ctx context.Context) ([]domain.PurchasedTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tickets []domain.PurchasedTicket
	found, err := s.read(ticketsFile, &tickets)
	if err != nil || !found {
		return nil, err
	}
	return tickets, nil
}

func (s *Store) SaveTickets(ctx context.Context, tickets []domain.PurchasedTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tickets == nil {
		tickets = []domain.PurchasedTicket{}
	}
	return s.write(ticketsFile, tickets)
}

func (s *Store) LoadCurrentBooking(ctx context.Context) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var booking domain.Booking
	found, err := s.read(bookingFile, &booking)
	if err != nil || !found {
		return nil, err
	}
	return &booking, nil
}

func (s *Store) SaveCurrentBooking(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(bookingFile, booking)
}

func (s *Store) ClearCurrentBooking(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, bookingFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) read(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return true, nil
}

// write replaces name atomically through a temp file in the same directory.
func (s *Store) write(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.dir, name))
}
