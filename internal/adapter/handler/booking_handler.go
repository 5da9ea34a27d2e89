package handler

import (
	"net/http"

	"github.com/srgjo27/eventflow/internal/core/ports"
)

type CancelTicketResponse struct {
	ID        string `json:"id"`
	Cancelled bool   `json:"cancelled"`
}

func (h *Handler) CurrentBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookings.CurrentBooking(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) CompleteCheckout(w http.ResponseWriter, r *http.Request) {
	var details ports.PaymentDetails
	if err := decodeJSON(r, &details); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	ticket, err := h.bookings.CompleteCheckout(r.Context(), details)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (h *Handler) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.bookings.ListTickets(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if tickets == nil {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

// CancelTicket answers 200 whether or not the ticket existed; the body says
// which.
func (h *Handler) CancelTicket(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	removed, err := h.bookings.CancelTicket(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, CancelTicketResponse{ID: id, Cancelled: removed})
}

func (h *Handler) AdminSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.admin.Summary(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
