package handler

import (
	"log/slog"
	"net/http"

	"github.com/srgjo27/eventflow/internal/core/services"
)

type Handler struct {
	catalog  *services.CatalogService
	seating  *services.SeatingService
	bookings *services.BookingService
	admin    *services.AdminService
	sessions *SessionRegistry
	logger   *slog.Logger
}

func NewHandler(
	catalog *services.CatalogService,
	seating *services.SeatingService,
	bookings *services.BookingService,
	admin *services.AdminService,
	sessions *SessionRegistry,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalog:  catalog,
		seating:  seating,
		bookings: bookings,
		admin:    admin,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /events", h.ListEvents)
	mux.HandleFunc("GET /events/{id}", h.GetEvent)

	mux.HandleFunc("POST /sessions", h.OpenSession)
	mux.HandleFunc("GET /sessions/{id}", h.GetSession)
	mux.HandleFunc("POST /sessions/{id}/toggle", h.ToggleSeat)
	mux.HandleFunc("POST /sessions/{id}/checkout", h.StartCheckout)
	mux.HandleFunc("DELETE /sessions/{id}", h.CloseSession)

	mux.HandleFunc("GET /checkout", h.CurrentBooking)
	mux.HandleFunc("POST /checkout/complete", h.CompleteCheckout)

	mux.HandleFunc("GET /tickets", h.ListTickets)
	mux.HandleFunc("DELETE /tickets/{id}", h.CancelTicket)

	mux.HandleFunc("GET /admin/summary", h.AdminSummary)

	return mux
}
