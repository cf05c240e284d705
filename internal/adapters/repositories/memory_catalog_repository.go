package repositories

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// In-memory implementation of the CatalogRepository port, for tests and
// for serving a catalog loaded directly from a JSON file.
type MemoryCatalogRepository struct{ Destinations []domain.Destination }

func NewMemoryCatalogRepository(destinations []domain.Destination) *MemoryCatalogRepository {
	return &MemoryCatalogRepository{Destinations: destinations}
}

func (m *MemoryCatalogRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	out := make([]domain.Destination, len(m.Destinations))
	copy(out, m.Destinations)
	return out, nil
}
