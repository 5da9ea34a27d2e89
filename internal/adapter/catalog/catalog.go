// Package catalog serves the fixed list of events the app sells seats for.
package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/srgjo27/eventflow/internal/core/domain"
	"gopkg.in/yaml.v3"
)

type Catalog struct {
	events []domain.Event
	byID   map[string]int
}

// New validates events and indexes them by id. Order is kept for listing.
func New(events []domain.Event) (*Catalog, error) {
	c := &Catalog{
		events: make([]domain.Event, 0, len(events)),
		byID:   make(map[string]int, len(events)),
	}
	for _, e := range events {
		if category, err := domain.ParseCategory(string(e.Category)); err == nil {
			e.Category = category
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, domain.Validationf("duplicate event id %s", e.ID)
		}
		c.byID[e.ID] = len(c.events)
		c.events = append(c.events, e)
	}
	return c, nil
}

type catalogFile struct {
	Events []domain.Event `yaml:"events"`
}

func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse catalog: %v", domain.ErrValidation, err)
	}
	return New(file.Events)
}

func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

func (c *Catalog) ListEvents(ctx context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, len(c.events))
	copy(out, c.events)
	return out, nil
}

func (c *Catalog) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, domain.NotFoundf("event %s", id)
	}
	event := c.events[idx]
	return &event, nil
}
