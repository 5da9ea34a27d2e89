package services_test

import (
	"context"
	"testing"

	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/ports/mocks"
	"github.com/srgjo27/eventflow/internal/core/pricing"
	"github.com/srgjo27/eventflow/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogEvents() []domain.Event {
	return []domain.Event{
		{ID: "1", Name: "Summer Music Festival", Category: domain.CategoryConcert, Venue: "Central Park", BasePrice: 50, Rows: 15, Columns: 12},
		{ID: "2", Name: "Tech Summit", Category: domain.CategoryConference, Venue: "Convention Center", Description: "Talks on AI", BasePrice: 120, Rows: 10, Columns: 10},
		{ID: "3", Name: "Laugh Night", Category: domain.CategoryComedy, Venue: "The Comedy Cellar", BasePrice: 30, Rows: 8, Columns: 10},
	}
}

func eventIDs(events []domain.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestListEvents_Filters(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		filter services.EventFilter
		want   []string
	}{
		{"all", services.EventFilter{}, []string{"1", "2", "3"}},
		{"all keyword", services.EventFilter{Category: "all"}, []string{"1", "2", "3"}},
		{"category", services.EventFilter{Category: "comedy"}, []string{"3"}},
		{"query on venue", services.EventFilter{Query: "central"}, []string{"1"}},
		{"query on description", services.EventFilter{Query: "ai"}, []string{"2"}},
		{"category and query", services.EventFilter{Category: "concert", Query: "tech"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := mocks.NewEventCatalog(t)
			catalog.On("ListEvents", ctx).Return(catalogEvents(), nil)

			events, err := services.NewCatalogService(catalog).ListEvents(ctx, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.want, eventIDs(events))
		})
	}
}

func TestListEvents_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	catalog := mocks.NewEventCatalog(t)
	catalog.On("ListEvents", ctx).Return(catalogEvents(), nil)

	_, err := services.NewCatalogService(catalog).ListEvents(ctx, services.EventFilter{Category: "opera"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSeatingOpen_GeneratesOnce(t *testing.T) {
	ctx := context.Background()
	events := catalogEvents()
	catalog := mocks.NewEventCatalog(t)
	catalog.On("GetEvent", ctx, "3").Return(&events[2], nil).Once()

	gen := pricing.NewGenerator(pricing.InventoryPolicy{ReserveProbability: 0, Seed: 7}, nil)
	seating := services.NewSeatingService(catalog, gen, pricing.DefaultDiscountPolicy())

	session, err := seating.Open(ctx, "3")
	require.NoError(t, err)
	assert.Len(t, session.Seats.Seats(), 80)

	for col := 0; col < 5; col++ {
		_, err := session.Toggle(7, col)
		require.NoError(t, err)
	}
	totals := session.Totals()
	// last row of an 8 row event: round(30 * 1.1) = 33
	assert.InDelta(t, 165.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 16.5, totals.Discount, 1e-9)
	assert.Len(t, session.Selection(), 5)
}

func TestSeatingOpen_UnknownEvent(t *testing.T) {
	ctx := context.Background()
	catalog := mocks.NewEventCatalog(t)
	catalog.On("GetEvent", ctx, "99").Return(nil, domain.NotFoundf("event 99"))

	seating := services.NewSeatingService(catalog, pricing.NewGenerator(pricing.DefaultInventoryPolicy(), nil), pricing.DefaultDiscountPolicy())

	session, err := seating.Open(ctx, "99")

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
