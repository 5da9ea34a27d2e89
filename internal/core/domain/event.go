package domain

import "strings"

type Category string

const (
	CategoryConcert    Category = "concert"
	CategoryConference Category = "conference"
	CategoryComedy     Category = "comedy"
)

func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryConcert, CategoryConference, CategoryComedy:
		return c, nil
	default:
		return "", Validationf("unknown category %q", s)
	}
}

type Event struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Category       Category `json:"category" yaml:"category"`
	Date           string   `json:"date" yaml:"date"`
	Time           string   `json:"time" yaml:"time"`
	Venue          string   `json:"venue" yaml:"venue"`
	Description    string   `json:"description" yaml:"description"`
	BasePrice      float64  `json:"basePrice" yaml:"base_price"`
	Rows           int      `json:"rows" yaml:"rows"`
	Columns        int      `json:"columns" yaml:"columns"`
	Image          string   `json:"image" yaml:"image"`
	AvailableSeats int      `json:"availableSeats" yaml:"available_seats"`
}

func (e Event) TotalSeats() int {
	return e.Rows * e.Columns
}

// Available is the advertised free seat count, falling back to the full
// house when the catalog does not supply one.
func (e Event) Available() int {
	if e.AvailableSeats > 0 {
		return e.AvailableSeats
	}
	return e.TotalSeats()
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return Validationf("event id is required")
	}
	if strings.TrimSpace(e.Name) == "" {
		return Validationf("event %s: name is required", e.ID)
	}
	if _, err := ParseCategory(string(e.Category)); err != nil {
		return Validationf("event %s: unknown category %q", e.ID, e.Category)
	}
	if e.BasePrice <= 0 {
		return Validationf("event %s: base price must be positive", e.ID)
	}
	if e.Rows <= 0 || e.Columns <= 0 {
		return Validationf("event %s: rows and columns must be positive", e.ID)
	}
	if e.AvailableSeats < 0 || e.AvailableSeats > e.TotalSeats() {
		return Validationf("event %s: available seats out of range", e.ID)
	}
	return nil
}
