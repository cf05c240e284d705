package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDestinationsQuery := `
	CREATE TABLE IF NOT EXISTS destinations (
		name TEXT PRIMARY KEY,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		avg_travel_cost REAL NOT NULL,
		avg_accommodation_cost REAL NOT NULL,
		interests TEXT NOT NULL,
		flag TEXT NOT NULL DEFAULT '',
		best_season TEXT NOT NULL DEFAULT '',
		safety_score REAL NOT NULL DEFAULT 0,
		currency TEXT NOT NULL DEFAULT 'USD',
		top_cities TEXT NOT NULL DEFAULT '[]'
	);
	`

	if _, err := tx.Exec(createDestinationsQuery); err != nil {
		return fmt.Errorf("init schema: create destinations table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type DestinationSeed struct {
	Name             string    `json:"name"`
	Coordinates      []float64 `json:"coordinates"`
	AvgTravelCost    float64   `json:"avg_travel_cost"`
	AvgAccommodation float64   `json:"avg_accommodation_cost"`
	Interests        []string  `json:"interests"`
	Flag             string    `json:"flag"`
	BestSeason       string    `json:"best_season"`
	SafetyScore      float64   `json:"safety_score"`
	Currency         string    `json:"currency"`
	TopCities        []string  `json:"top_cities"`
}

// Populate the database with destination data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed destinations: read %q: %w", jsonPath, err)
	}

	var data []DestinationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed destinations: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed destinations: item at index %d: name cannot be empty", i+1)
		}
		if len(item.Coordinates) != 2 {
			return fmt.Errorf("seed destinations: item %q: coordinates must be [lat, lon]", item.Name)
		}
		if len(item.Interests) == 0 {
			return fmt.Errorf("seed destinations: item %q: interests cannot be empty", item.Name)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed destinations: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO destinations (
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
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed destinations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range data {
		interestsJSON, err := json.Marshal(d.Interests)
		if err != nil {
			return fmt.Errorf("seed destinations: encode interests for %q: %w", d.Name, err)
		}
		cities := d.TopCities
		if cities == nil {
			cities = []string{}
		}
		citiesJSON, err := json.Marshal(cities)
		if err != nil {
			return fmt.Errorf("seed destinations: encode top cities for %q: %w", d.Name, err)
		}
		currency := d.Currency
		if currency == "" {
			currency = "USD"
		}

		_, err = stmt.Exec(
			strings.TrimSpace(d.Name),
			d.Coordinates[0],
			d.Coordinates[1],
			d.AvgTravelCost,
			d.AvgAccommodation,
			string(interestsJSON),
			d.Flag,
			d.BestSeason,
			d.SafetyScore,
			currency,
			string(citiesJSON),
		)
		if err != nil {
			return fmt.Errorf("seed destinations: insert %q: %w", d.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed destinations: commit tx: %w", err)
	}

	return nil
}
