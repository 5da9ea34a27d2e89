package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/srgjo27/eventflow/internal/core/domain"
)

// The pending booking lives in a single-row table keyed by this slot.
const currentSlot = 1

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) LoadCurrentBooking(ctx context.Context) (*domain.Booking, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM current_booking WHERE slot = $1`, currentSlot).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var booking domain.Booking
	if err := json.Unmarshal(payload, &booking); err != nil {
		return nil, fmt.Errorf("invalid booking payload: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepository) SaveCurrentBooking(ctx context.Context, booking *domain.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO current_booking (slot, payload, created_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, created_at = EXCLUDED.created_at
	`

	_, err = r.db.ExecContext(ctx, query, currentSlot, payload, booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save current booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) ClearCurrentBooking(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM current_booking WHERE slot = $1`, currentSlot)
	return err
}
