package handler

import (
	"net/http"

	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/services"
)

type OpenSessionRequest struct {
	EventID string `json:"event_id"`
}

type ToggleSeatRequest struct {
	Row    *int `json:"row"`
	Column *int `json:"column"`
}

type seatResponse struct {
	domain.Seat
	Label string `json:"label"`
}

type sessionResponse struct {
	SessionID   string         `json:"session_id"`
	Event       eventResponse  `json:"event"`
	Rows        int            `json:"rows"`
	Columns     int            `json:"columns"`
	Seats       []seatResponse `json:"seats"`
	Selection   []seatResponse `json:"selection"`
	Totals      domain.Totals  `json:"totals"`
	CanCheckout bool           `json:"can_checkout"`
}

func newSessionResponse(id string, s *services.Session) sessionResponse {
	selection := s.Selection()
	return sessionResponse{
		SessionID:   id,
		Event:       newEventResponse(*s.Event),
		Rows:        s.Seats.Rows(),
		Columns:     s.Seats.Columns(),
		Seats:       seatResponses(s.Seats.Seats()),
		Selection:   seatResponses(selection),
		Totals:      s.Totals(),
		CanCheckout: len(selection) > 0,
	}
}

func seatResponses(seats []domain.Seat) []seatResponse {
	out := make([]seatResponse, 0, len(seats))
	for _, seat := range seats {
		out = append(out, seatResponse{Seat: seat, Label: seat.Label()})
	}
	return out
}

func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	session, err := h.seating.Open(r.Context(), req.EventID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	id := h.sessions.Add(session)
	writeJSON(w, http.StatusCreated, newSessionResponse(id, session))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var resp sessionResponse
	err := h.sessions.With(id, func(s *services.Session) error {
		resp = newSessionResponse(id, s)
		return nil
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req ToggleSeatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.Row == nil || req.Column == nil {
		writeError(w, r, h.logger, domain.Validationf("row and column are required"))
		return
	}

	var resp sessionResponse
	err := h.sessions.With(id, func(s *services.Session) error {
		if _, err := s.Toggle(*req.Row, *req.Column); err != nil {
			return err
		}
		resp = newSessionResponse(id, s)
		return nil
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	var booking *domain.Booking
	err := h.sessions.With(r.PathValue("id"), func(s *services.Session) error {
		var err error
		booking, err = h.bookings.StartCheckout(r.Context(), s)
		return err
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	h.sessions.Remove(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
