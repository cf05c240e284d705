package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"trip-itinerary-service/internal/domain"
)

// SQLite-backed implementation of the CatalogRepository port.
type SqliteCatalogRepository struct{ DB *sql.DB }

func NewSqliteCatalogRepository(db *sql.DB) *SqliteCatalogRepository {
	return &SqliteCatalogRepository{DB: db}
}

// Return all destinations stored in the database.
func (s *SqliteCatalogRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite catalog repository: DB is nil")
	}

	query := `
	SELECT
		name,
		lat,
		lon,
		avg_travel_cost,
		avg_accommodation_cost,
		interests,
		flag,
		best_season,
		safety_score,
		currency,
		top_cities
	FROM destinations
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list destinations: query destinations table: %w", err)
	}
	defer rows.Close()

	destinations := make([]domain.Destination, 0, 64)
	for rows.Next() {
		var d domain.Destination
		var interestsJSON, citiesJSON string
		err := rows.Scan(
			&d.Name,
			&d.Coordinates.Lat,
			&d.Coordinates.Lon,
			&d.TravelCost,
			&d.AccommodationCost,
			&interestsJSON,
			&d.Flag,
			&d.BestSeason,
			&d.SafetyScore,
			&d.Currency,
			&citiesJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("list destinations: scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(interestsJSON), &d.Interests); err != nil {
			return nil, fmt.Errorf("list destinations: decode interests for %q: %w", d.Name, err)
		}
		if err := json.Unmarshal([]byte(citiesJSON), &d.TopCities); err != nil {
			return nil, fmt.Errorf("list destinations: decode top cities for %q: %w", d.Name, err)
		}
		destinations = append(destinations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list destinations: row iteration: %w", err)
	}

	return destinations, nil
}
