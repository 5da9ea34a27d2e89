package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/srgjo27/eventflow/internal/core/domain"
	"github.com/srgjo27/eventflow/internal/core/ports"
)

// EventFilter narrows the catalog. An empty Category or "all" keeps every
// category; Query matches name, venue or description, ignoring case.
type EventFilter struct {
	Category string
	Query    string
}

type CatalogService struct {
	catalog ports.EventCatalog
}

func NewCatalogService(catalog ports.EventCatalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) ListEvents(ctx context.Context, filter EventFilter) ([]domain.Event, error) {
	events, err := s.catalog.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var category domain.Category
	if c := strings.TrimSpace(filter.Category); c != "" && !strings.EqualFold(c, "all") {
		category, err = domain.ParseCategory(c)
		if err != nil {
			return nil, err
		}
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	filtered := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if category != "" && e.Category != category {
			continue
		}
		if query != "" && !matches(e, query) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

func (s *CatalogService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return s.catalog.GetEvent(ctx, id)
}

func matches(e domain.Event, query string) bool {
	return strings.Contains(strings.ToLower(e.Name), query) ||
		strings.Contains(strings.ToLower(e.Venue), query) ||
		strings.Contains(strings.ToLower(e.Description), query)
}
