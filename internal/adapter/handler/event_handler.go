package handler

import (
	"net/http"

	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/pricing"
	"github.com/srgjo27/eventflow/internal/core/services"
)

type eventResponse struct {
	domain.Event
	PriceRange string `json:"priceRange"`
}

func newEventResponse(e domain.Event) eventResponse {
	e.AvailableSeats = e.Available()
	return eventResponse{Event: e, PriceRange: pricing.PriceRange(e)}
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter := services.EventFilter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}

	events, err := h.catalog.ListEvents(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	resp := make([]eventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, newEventResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.catalog.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newEventResponse(*event))
}
