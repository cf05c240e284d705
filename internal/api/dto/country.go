package dto

// CountryInfo is the public catalog entry served to the frontend.
type CountryInfo struct {
	Name                 string    `json:"name"`
	Flag                 string    `json:"flag"`
	Interests            []string  `json:"interests"`
	AvgTravelCost        float64   `json:"avg_travel_cost"`
	AvgAccommodationCost float64   `json:"avg_accommodation_cost"`
	Coordinates          []float64 `json:"coordinates"`
	BestSeason           string    `json:"best_season,omitempty"`
	SafetyScore          float64   `json:"safety_score,omitempty"`
	Currency             string    `json:"currency,omitempty"`
	TopCities            []string  `json:"top_cities"`
}

// AvailableDataResponse is the body of GET /api/countries.
type AvailableDataResponse struct {
	Countries      []CountryInfo `json:"countries"`
	AllInterests   []string      `json:"all_interests"`
	TotalCountries int           `json:"total_countries"`
}
