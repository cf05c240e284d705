package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// Port: a boundary for retrieving destination records from a data source.
// The planning core never writes through it; the catalog is loaded once at
// startup and treated as immutable afterwards.
type CatalogRepository interface {
	// Retrieve all destination records available for planning.
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
}
