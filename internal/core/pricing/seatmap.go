package pricing

import (
	"github.com/srgjo27/eventflow/internal/core/domain"
)

// SeatMap is the seat grid of one viewing session together with the
// ordered set of seats the visitor has picked.
type SeatMap struct {
	rows     int
	columns  int
	seats    []domain.Seat
	selected []int
}

// NewSeatMap restores a map from a row-major seat list. Seats already marked
// selected form the initial selection in grid order.
func NewSeatMap(rows, columns int, seats []domain.Seat) (*SeatMap, error) {
	if rows <= 0 || columns <= 0 {
		return nil, domain.Validationf("rows and columns must be positive")
	}
	if len(seats) != rows*columns {
		return nil, domain.Validationf("expected %d seats, got %d", rows*columns, len(seats))
	}

	m := &SeatMap{rows: rows, columns: columns, seats: make([]domain.Seat, len(seats))}
	copy(m.seats, seats)
	for i, seat := range m.seats {
		if seat.Row != i/columns || seat.Column != i%columns {
			return nil, domain.Validationf("seat %d is out of row-major order", i)
		}
		if seat.Status == domain.SeatSelected {
			m.selected = append(m.selected, i)
		}
	}
	return m, nil
}

func (m *SeatMap) Rows() int    { return m.rows }
func (m *SeatMap) Columns() int { return m.columns }

func (m *SeatMap) Seats() []domain.Seat {
	out := make([]domain.Seat, len(m.seats))
	copy(out, m.seats)
	return out
}

func (m *SeatMap) Seat(row, col int) (domain.Seat, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return domain.Seat{}, err
	}
	return m.seats[idx], nil
}

// Toggle flips a seat between available and selected. Reserved seats are
// left alone without an error.
func (m *SeatMap) Toggle(row, col int) (domain.Seat, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return domain.Seat{}, err
	}

	seat := &m.seats[idx]
	switch {
	case seat.IsAvailable():
		seat.Status = domain.SeatSelected
		m.selected = append(m.selected, idx)
	case seat.Status == domain.SeatSelected:
		seat.Status = domain.SeatAvailable
		m.deselect(idx)
	}
	return *seat, nil
}

// Selection returns the picked seats in the order they were picked.
func (m *SeatMap) Selection() []domain.Seat {
	out := make([]domain.Seat, 0, len(m.selected))
	for _, idx := range m.selected {
		out = append(out, m.seats[idx])
	}
	return out
}

func (m *SeatMap) Totals(policy DiscountPolicy) domain.Totals {
	return ComputeTotals(m.Selection(), policy)
}

// AvailableCount counts every seat that is not reserved.
func (m *SeatMap) AvailableCount() int {
	n := 0
	for _, seat := range m.seats {
		if !seat.IsReserved() {
			n++
		}
	}
	return n
}

func (m *SeatMap) index(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.columns {
		return 0, domain.NotFoundf("seat row %d column %d", row, col)
	}
	return row*m.columns + col, nil
}

func (m *SeatMap) deselect(idx int) {
	for i, sel := range m.selected {
		if sel == idx {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			return
		}
	}
}
