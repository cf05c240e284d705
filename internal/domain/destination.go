package domain

import (
	"errors"
	"fmt"
)

// Validation failures for catalog records. Bad data is rejected at load
// time so the planning core only ever sees well-formed destinations.
var (
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrInvalidCost       = errors.New("cost must be non-negative")
)

// Immutable geographic coordinates in degrees (WGS 84).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate checks the coordinate pair against [-90,90] x [-180,180].
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinate, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinate, c.Lon)
	}
	return nil
}

// Destination is a single visitable location in the catalog.
// Costs are currency-agnostic units: TravelCost is one-way travel into the
// destination, AccommodationCost is per day of stay. Interests is the
// destination's tag vocabulary and must be non-empty.
//
// The trailing fields (flag through top cities) are static descriptive data
// consumed by the enrichment layer; the optimization core never reads them.
type Destination struct {
	Name              string
	Coordinates       Coordinates
	TravelCost        float64
	AccommodationCost float64
	Interests         []string

	Flag        string
	BestSeason  string
	SafetyScore float64
	Currency    string
	TopCities   []string
}

// Validate rejects records the planning core must never see.
func (d Destination) Validate() error {
	if d.Name == "" {
		return errors.New("destination name must be non-empty")
	}
	if err := d.Coordinates.Validate(); err != nil {
		return fmt.Errorf("destination %q: %w", d.Name, err)
	}
	if d.TravelCost < 0 {
		return fmt.Errorf("destination %q: travel cost %v: %w", d.Name, d.TravelCost, ErrInvalidCost)
	}
	if d.AccommodationCost < 0 {
		return fmt.Errorf("destination %q: accommodation cost %v: %w", d.Name, d.AccommodationCost, ErrInvalidCost)
	}
	if len(d.Interests) == 0 {
		return fmt.Errorf("destination %q: interest tags must be non-empty", d.Name)
	}
	return nil
}
