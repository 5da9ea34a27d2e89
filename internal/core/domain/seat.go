package domain

import "strconv"

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatReserved  SeatStatus = "reserved"
	SeatSelected  SeatStatus = "selected"
)

type Seat struct {
	Row    int        `json:"row"`
	Column int        `json:"column"`
	Status SeatStatus `json:"status"`
	Price  float64    `json:"price"`
}

// RowLabel maps a 0-based row index to its letter: 0 is "A".
func RowLabel(row int) string {
	return string(rune(65 + row))
}

// Label is the printed seat name, row letter plus 1-based column ("A1").
func (s Seat) Label() string {
	return RowLabel(s.Row) + strconv.Itoa(s.Column+1)
}

func (s Seat) IsAvailable() bool {
	return s.Status == SeatAvailable
}

func (s Seat) IsReserved() bool {
	return s.Status == SeatReserved
}
