package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"trip-itinerary-service/internal/domain"
)

// JSON-file implementation of the CatalogRepository port. Useful for
// running without a database; the file uses the same layout as the
// seed file.
type JSONCatalogRepository struct{ Path string }

func NewJSONCatalogRepository(path string) *JSONCatalogRepository {
	return &JSONCatalogRepository{Path: path}
}

func (j *JSONCatalogRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	bytes, err := os.ReadFile(j.Path)
	if err != nil {
		return nil, fmt.Errorf("json catalog: read %q: %w", j.Path, err)
	}

	var seeds []DestinationSeed
	if err := json.Unmarshal(bytes, &seeds); err != nil {
		return nil, fmt.Errorf("json catalog: parse %q: %w", j.Path, err)
	}

	destinations := make([]domain.Destination, 0, len(seeds))
	for i, s := range seeds {
		if len(s.Coordinates) != 2 {
			return nil, fmt.Errorf("json catalog: item at index %d: coordinates must be [lat, lon]", i+1)
		}
		currency := s.Currency
		if currency == "" {
			currency = "USD"
		}
		destinations = append(destinations, domain.Destination{
			Name:              s.Name,
			Coordinates:       domain.Coordinates{Lat: s.Coordinates[0], Lon: s.Coordinates[1]},
			TravelCost:        s.AvgTravelCost,
			AccommodationCost: s.AvgAccommodation,
			Interests:         s.Interests,
			Flag:              s.Flag,
			BestSeason:        s.BestSeason,
			SafetyScore:       s.SafetyScore,
			Currency:          currency,
			TopCities:         s.TopCities,
		})
	}

	return destinations, nil
}
