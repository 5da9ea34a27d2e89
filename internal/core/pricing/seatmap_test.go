package pricing_test

import (
	"testing"

	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMap builds a 2x3 map where seat B2 is reserved.
func newMap(t *testing.T) *pricing.SeatMap {
	t.Helper()

	var seats []domain.Seat
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			seats = append(seats, domain.Seat{Row: row, Column: col, Status: domain.SeatAvailable, Price: 60})
		}
	}
	seats[4].Status = domain.SeatReserved

	m, err := pricing.NewSeatMap(2, 3, seats)
	require.NoError(t, err)
	return m
}

func TestToggle_ReservedIsNoop(t *testing.T) {
	m := newMap(t)

	seat, err := m.Toggle(1, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SeatReserved, seat.Status)

	stored, err := m.Seat(1, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SeatReserved, stored.Status)
	assert.Empty(t, m.Selection())
}

func TestToggle_RoundTrip(t *testing.T) {
	m := newMap(t)

	seat, err := m.Toggle(0, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.SeatSelected, seat.Status)
	require.Len(t, m.Selection(), 1)
	assert.Equal(t, "A3", m.Selection()[0].Label())

	seat, err = m.Toggle(0, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.SeatAvailable, seat.Status)
	assert.Empty(t, m.Selection())

	stored, _ := m.Seat(0, 2)
	assert.Equal(t, domain.SeatAvailable, stored.Status)
	assert.Equal(t, 60.0, stored.Price)
}

func TestToggle_KeepsPickOrder(t *testing.T) {
	m := newMap(t)

	for _, pos := range [][2]int{{1, 2}, {0, 0}, {0, 1}} {
		_, err := m.Toggle(pos[0], pos[1])
		require.NoError(t, err)
	}
	_, err := m.Toggle(0, 0)
	require.NoError(t, err)

	var labels []string
	for _, s := range m.Selection() {
		labels = append(labels, s.Label())
	}
	assert.Equal(t, []string{"B3", "A2"}, labels)
}

func TestToggle_OutOfRange(t *testing.T) {
	m := newMap(t)

	_, err := m.Toggle(2, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = m.Toggle(0, -1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSeatsReturnsCopy(t *testing.T) {
	m := newMap(t)

	seats := m.Seats()
	seats[0].Status = domain.SeatReserved

	stored, _ := m.Seat(0, 0)
	assert.Equal(t, domain.SeatAvailable, stored.Status)
}

func TestNewSeatMap_Validation(t *testing.T) {
	_, err := pricing.NewSeatMap(1, 2, []domain.Seat{{Row: 0, Column: 0}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = pricing.NewSeatMap(1, 2, []domain.Seat{{Row: 0, Column: 1}, {Row: 0, Column: 0}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	m, err := pricing.NewSeatMap(1, 2, []domain.Seat{
		{Row: 0, Column: 0, Status: domain.SeatSelected, Price: 10},
		{Row: 0, Column: 1, Status: domain.SeatAvailable, Price: 10},
	})
	require.NoError(t, err)
	assert.Len(t, m.Selection(), 1)
}
