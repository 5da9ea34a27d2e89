package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/srgjo27/eventflow/internal/core/domain"
)

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) LoadTickets(ctx context.Context) ([]domain.PurchasedTicket, error) {
	query := `
	SELECT payload FROM purchased_tickets
	ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var tickets []domain.PurchasedTicket
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}

		var ticket domain.PurchasedTicket
		if err := json.Unmarshal(payload, &ticket); err != nil {
			return nil, fmt.Errorf("invalid ticket payload: %w", err)
		}

		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}

// SaveTickets replaces the whole collection in one transaction.
func (r *TicketRepository) SaveTickets(ctx context.Context, tickets []domain.PurchasedTicket) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM purchased_tickets`); err != nil {
		return fmt.Errorf("failed to clear tickets: %w", err)
	}

	query := `
	INSERT INTO purchased_tickets (position, id, event_id, total, payload, purchased_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare ticket statement: %w", err)
	}

	defer stmt.Close()

	for i, ticket := range tickets {
		payload, err := json.Marshal(ticket)
		if err != nil {
			return err
		}

		_, err = stmt.ExecContext(ctx, i, ticket.ID, ticket.Event.ID, ticket.Total, payload, ticket.PurchasedAt)
		if err != nil {
			return fmt.Errorf("failed to insert ticket %s: %w", ticket.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
