package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS purchased_tickets (
	position     INTEGER NOT NULL,
	id           TEXT PRIMARY KEY,
	event_id     TEXT NOT NULL,
	total        NUMERIC(12, 2) NOT NULL,
	payload      JSONB NOT NULL,
	purchased_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS current_booking (
	slot       SMALLINT PRIMARY KEY,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`

// Migrate creates the tables used by the repositories when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Store pairs both repositories behind the storage ports.
type Store struct {
	*TicketRepository
	*BookingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		TicketRepository:  NewTicketRepository(db),
		BookingRepository: NewBookingRepository(db),
	}
}
