package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"trip-itinerary-service/internal/domain"
)

// dest builds a catalog record for tests. Coordinates are (lat, lon).
func dest(name string, lat, lon, travel, accom float64, tags ...string) domain.Destination {
	return domain.Destination{
		Name:              name,
		Coordinates:       domain.Coordinates{Lat: lat, Lon: lon},
		TravelCost:        travel,
		AccommodationCost: accom,
		Interests:         tags,
	}
}

func mustCatalog(t *testing.T, records ...domain.Destination) *domain.Catalog {
	t.Helper()
	cat, err := domain.NewCatalog(records)
	require.NoError(t, err)
	return cat
}
