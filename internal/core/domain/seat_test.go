package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeat_Label(t *testing.T) {
	assert.Equal(t, "A1", Seat{Row: 0, Column: 0}.Label())
	assert.Equal(t, "C12", Seat{Row: 2, Column: 11}.Label())
}

func TestSeat_Status(t *testing.T) {
	assert.True(t, Seat{Status: SeatAvailable}.IsAvailable())
	assert.False(t, Seat{Status: SeatSelected}.IsAvailable())
	assert.False(t, Seat{Status: SeatReserved}.IsAvailable())
	assert.True(t, Seat{Status: SeatReserved}.IsReserved())
}
