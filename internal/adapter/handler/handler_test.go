package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/srgjo27/eventflow/internal/adapter/catalog"
	"github.com/srgjo27/eventflow/internal/adapter/handler"
	"github.com/srgjo27/eventflow/internal/adapter/payment"
	"github.com/srgjo27/eventflow/internal/adapter/repository/memory"
	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/pricing"
	"github.com/srgjo27/eventflow/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seatJSON struct {
	Row    int     `json:"row"`
	Column int     `json:"column"`
	Status string  `json:"status"`
	Price  float64 `json:"price"`
	Label  string  `json:"label"`
}

type sessionJSON struct {
	SessionID   string        `json:"session_id"`
	Seats       []seatJSON    `json:"seats"`
	Selection   []seatJSON    `json:"selection"`
	Totals      domain.Totals `json:"totals"`
	CanCheckout bool          `json:"can_checkout"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := catalog.Builtin()
	store := memory.NewStore()
	discount := pricing.DefaultDiscountPolicy()
	generator := pricing.NewGenerator(pricing.InventoryPolicy{ReserveProbability: 0, Seed: 1}, nil)

	h := handler.NewHandler(
		services.NewCatalogService(events),
		services.NewSeatingService(events, generator, discount),
		services.NewBookingService(store, store, payment.NewSimulated(0), discount, services.WithLogger(logger)),
		services.NewAdminService(store),
		handler.NewSessionRegistry(),
		logger,
	)

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestListEvents(t *testing.T) {
	srv := newServer(t)

	var events []struct {
		ID         string `json:"id"`
		Category   string `json:"category"`
		PriceRange string `json:"priceRange"`
	}
	status := do(t, http.MethodGet, srv.URL+"/events?category=concert", nil, &events)

	require.Equal(t, http.StatusOK, status)
	require.Len(t, events, 2)
	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, "$55 - $125", events[0].PriceRange)

	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, srv.URL+"/events?category=opera", nil, nil))
}

func TestGetEvent_NotFound(t *testing.T) {
	srv := newServer(t)

	assert.Equal(t, http.StatusNotFound, do(t, http.MethodGet, srv.URL+"/events/404", nil, nil))
}

func TestCheckoutFlow(t *testing.T) {
	srv := newServer(t)

	var session sessionJSON
	status := do(t, http.MethodPost, srv.URL+"/sessions", handler.OpenSessionRequest{EventID: "3"}, &session)
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, session.Seats, 80)
	assert.False(t, session.CanCheckout)

	sessionURL := srv.URL + "/sessions/" + session.SessionID

	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPost, sessionURL+"/checkout", nil, nil))

	for col := 0; col < 5; col++ {
		row, column := 7, col
		status := do(t, http.MethodPost, sessionURL+"/toggle", handler.ToggleSeatRequest{Row: &row, Column: &column}, &session)
		require.Equal(t, http.StatusOK, status)
	}
	require.Len(t, session.Selection, 5)
	assert.Equal(t, "H1", session.Selection[0].Label)
	assert.InDelta(t, 165.0, session.Totals.Subtotal, 1e-9)
	assert.InDelta(t, 16.5, session.Totals.Discount, 1e-9)
	assert.True(t, session.CanCheckout)

	var booking domain.Booking
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, sessionURL+"/checkout", nil, &booking))
	assert.Len(t, booking.Seats, 5)
	assert.InDelta(t, 148.5, booking.Total, 1e-9)

	var pending domain.Booking
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, srv.URL+"/checkout", nil, &pending))
	assert.Equal(t, booking.Total, pending.Total)

	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPost, srv.URL+"/checkout/complete", map[string]string{"card_number": "4242"}, nil))

	card := map[string]string{
		"cardholder_name": "Jo Doe",
		"card_number":     "4242 4242 4242 4242",
		"expiry":          "12/30",
		"cvv":             "123",
	}
	var ticket domain.PurchasedTicket
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, srv.URL+"/checkout/complete", card, &ticket))
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, "3", ticket.Event.ID)

	assert.Equal(t, http.StatusNotFound, do(t, http.MethodGet, srv.URL+"/checkout", nil, nil))

	var tickets []domain.PurchasedTicket
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, srv.URL+"/tickets", nil, &tickets))
	require.Len(t, tickets, 1)

	var summary services.AdminSummary
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, srv.URL+"/admin/summary", nil, &summary))
	assert.Equal(t, 1, summary.Bookings)
	assert.Equal(t, 5, summary.TicketsSold)
	assert.InDelta(t, 148.5, summary.TotalRevenue, 1e-9)

	var cancelled handler.CancelTicketResponse
	require.Equal(t, http.StatusOK, do(t, http.MethodDelete, srv.URL+"/tickets/"+ticket.ID, nil, &cancelled))
	assert.True(t, cancelled.Cancelled)

	require.Equal(t, http.StatusOK, do(t, http.MethodDelete, srv.URL+"/tickets/"+ticket.ID, nil, &cancelled))
	assert.False(t, cancelled.Cancelled)

	tickets = nil
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, srv.URL+"/tickets", nil, &tickets))
	assert.Empty(t, tickets)
}

func TestToggleSeat_Errors(t *testing.T) {
	srv := newServer(t)

	var session sessionJSON
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, srv.URL+"/sessions", handler.OpenSessionRequest{EventID: "6"}, &session))
	sessionURL := srv.URL + "/sessions/" + session.SessionID

	row, column := 99, 0
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodPost, sessionURL+"/toggle", handler.ToggleSeatRequest{Row: &row, Column: &column}, nil))
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPost, sessionURL+"/toggle", map[string]int{"row": 1}, nil))

	unknown := srv.URL + "/sessions/nope/toggle"
	row = 0
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodPost, unknown, handler.ToggleSeatRequest{Row: &row, Column: &column}, nil))

	assert.Equal(t, http.StatusNoContent, do(t, http.MethodDelete, sessionURL, nil, nil))
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodGet, sessionURL, nil, nil))
}

func TestOpenSession_UnknownEvent(t *testing.T) {
	srv := newServer(t)

	assert.Equal(t, http.StatusNotFound, do(t, http.MethodPost, srv.URL+"/sessions", handler.OpenSessionRequest{EventID: "404"}, nil))
}
