package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/ports"
	"github.com/srgjo27/eventflow/internal/core/pricing"
)

type BookingService struct {
	// mu serializes every read-modify-write of the pending booking and the
	// ticket collection.
	mu sync.Mutex

	tickets  ports.TicketStore
	bookings ports.BookingStore
	payments ports.PaymentGateway
	discount pricing.DiscountPolicy
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

type BookingServiceOption func(*BookingService)

func WithLogger(logger *slog.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// WithIDGenerator replaces the uuid generator used for ticket ids.
func WithIDGenerator(newID func() string) BookingServiceOption {
	return func(s *BookingService) {
		s.newID = newID
	}
}

func NewBookingService(
	tickets ports.TicketStore,
	bookings ports.BookingStore,
	payments ports.PaymentGateway,
	discount pricing.DiscountPolicy,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		tickets:  tickets,
		bookings: bookings,
		payments: payments,
		discount: discount,
		logger:   slog.Default(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Build snapshots event and selection into a booking priced with the
// service's discount policy.
func (s *BookingService) Build(event *domain.Event, selection []domain.Seat) (*domain.Booking, error) {
	if event == nil {
		return nil, domain.Validationf("no event for booking")
	}
	if len(selection) == 0 {
		return nil, domain.Validationf("no seats selected")
	}

	seats := make([]domain.Seat, len(selection))
	copy(seats, selection)
	totals := pricing.ComputeTotals(seats, s.discount)

	return &domain.Booking{
		Event:     *event,
		Seats:     seats,
		Subtotal:  totals.Subtotal,
		Discount:  totals.Discount,
		Total:     totals.Total,
		CreatedAt: s.now().UTC(),
	}, nil
}

// StartCheckout builds a booking from the session's selection and stores it
// as the booking awaiting payment.
func (s *BookingService) StartCheckout(ctx context.Context, session *Session) (*domain.Booking, error) {
	if session == nil {
		return nil, domain.Validationf("no seating session")
	}

	booking, err := s.Build(session.Event, session.Selection())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	err = s.bookings.SaveCurrentBooking(ctx, booking)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to save current booking: %w", err)
	}

	s.logger.InfoContext(ctx, "checkout started",
		"event_id", booking.Event.ID,
		"seats", len(booking.Seats),
		"total", booking.Total,
	)
	return booking, nil
}

func (s *BookingService) CurrentBooking(ctx context.Context) (*domain.Booking, error) {
	booking, err := s.bookings.LoadCurrentBooking(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load current booking: %w", err)
	}
	if booking == nil {
		return nil, domain.NotFoundf("no booking awaiting checkout")
	}
	return booking, nil
}

// CompleteCheckout charges the pending booking and turns it into a
// purchased ticket. A declined payment keeps the booking pending. Concurrent
// completions run one at a time, so only the first finds the booking.
func (s *BookingService) CompleteCheckout(ctx context.Context, details ports.PaymentDetails) (*domain.PurchasedTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.bookings.LoadCurrentBooking(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load current booking: %w", err)
	}
	if booking == nil {
		return nil, domain.Validationf("no booking awaiting checkout")
	}
	if err := booking.Validate(); err != nil {
		return nil, err
	}

	if err := s.payments.Charge(ctx, booking, details); err != nil {
		s.logger.WarnContext(ctx, "payment failed", "event_id", booking.Event.ID, "error", err)
		if errors.Is(err, domain.ErrPaymentDeclined) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to charge booking: %w", err)
	}

	ticket := s.Finalize(*booking)

	tickets, err := s.tickets.LoadTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}
	tickets = append(tickets, ticket)
	if err := s.tickets.SaveTickets(ctx, tickets); err != nil {
		return nil, fmt.Errorf("failed to save tickets: %w", err)
	}

	if err := s.bookings.ClearCurrentBooking(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear current booking: %w", err)
	}

	s.logger.InfoContext(ctx, "ticket purchased",
		"ticket_id", ticket.ID,
		"event_id", ticket.Event.ID,
		"total", ticket.Total,
	)
	return &ticket, nil
}

// Finalize stamps a booking with a ticket id and purchase time.
func (s *BookingService) Finalize(booking domain.Booking) domain.PurchasedTicket {
	return domain.PurchasedTicket{
		ID:          s.newID(),
		Booking:     booking,
		PurchasedAt: s.now().UTC(),
	}
}

func (s *BookingService) ListTickets(ctx context.Context) ([]domain.PurchasedTicket, error) {
	tickets, err := s.tickets.LoadTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}
	return tickets, nil
}

// CancelTicket removes the ticket with id. An unknown id changes nothing
// and reports false.
func (s *BookingService) CancelTicket(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.tickets.LoadTickets(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load tickets: %w", err)
	}

	kept := make([]domain.PurchasedTicket, 0, len(tickets))
	for _, t := range tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tickets) {
		return false, nil
	}

	if err := s.tickets.SaveTickets(ctx, kept); err != nil {
		return false, fmt.Errorf("failed to save tickets: %w", err)
	}

	s.logger.InfoContext(ctx, "ticket cancelled", "ticket_id", id)
	return true, nil
}
