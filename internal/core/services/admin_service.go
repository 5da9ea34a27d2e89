package services

import (
	"context"
	"fmt"

	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/ports"
)

type AdminSummary struct {
	Bookings     int                      `json:"bookings"`
	TotalRevenue float64                  `json:"total_revenue"`
	TicketsSold  int                      `json:"tickets_sold"`
	Tickets      []domain.PurchasedTicket `json:"tickets"`
}

type AdminService struct {
	tickets ports.TicketStore
}

func NewAdminService(tickets ports.TicketStore) *AdminService {
	return &AdminService{tickets: tickets}
}

func (s *AdminService) Summary(ctx context.Context) (*AdminSummary, error) {
	tickets, err := s.tickets.LoadTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}

	summary := &AdminSummary{Bookings: len(tickets), Tickets: tickets}
	for _, t := range tickets {
		summary.TotalRevenue += t.Total
		summary.TicketsSold += len(t.Seats)
	}
	if summary.Tickets == nil {
		summary.Tickets = []domain.PurchasedTicket{}
	}
	return summary, nil
}
