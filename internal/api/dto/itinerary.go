package dto

import (
	"trip-itinerary-service/internal/enrichment"
)

// ItineraryRequest is the body of POST /api/generate-itinerary.
// Dates use YYYY-MM-DD; the trip length is inclusive of both endpoints.
type ItineraryRequest struct {
	HomeCountry  string   `json:"home_country" validate:"required"`
	NumCountries int      `json:"num_countries" validate:"required,gte=1,lte=15"`
	Interests    []string `json:"interests" validate:"required,min=1,dive,required"`
	Budget       float64  `json:"budget" validate:"required,gt=0"`
	StartDate    string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string   `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// CountryStop is a single destination in the generated itinerary,
// enriched with season, currency, visa, and recommendation data.
type CountryStop struct {
	Country           string    `json:"country"`
	Flag              string    `json:"flag"`
	Days              int       `json:"days"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	TravelCost        float64   `json:"travel_cost"`
	AccommodationCost float64   `json:"accommodation_cost"`
	TotalCost         float64   `json:"total_cost"`
	Interests         []string  `json:"interests"`
	Coordinates       []float64 `json:"coordinates"`
	BestSeason        string    `json:"best_season,omitempty"`
	SafetyScore       float64   `json:"safety_score,omitempty"`
	Currency          string    `json:"currency,omitempty"`
	TopCities         []string  `json:"top_cities"`

	SeasonInfo      *enrichment.SeasonInfo      `json:"season_info,omitempty"`
	CurrencyInfo    *enrichment.CurrencyInfo    `json:"currency_info,omitempty"`
	SpendingGuide   *enrichment.SpendingGuide   `json:"spending_guide,omitempty"`
	VisaInfo        *enrichment.VisaInfo        `json:"visa_info,omitempty"`
	Recommendations *enrichment.Recommendations `json:"recommendations,omitempty"`
}

// RouteInfo describes the full round trip.
type RouteInfo struct {
	Route           []string `json:"route"`
	RouteDisplay    string   `json:"route_display"`
	TotalDistanceKM float64  `json:"total_distance_km"`
}

// ItineraryResponse is the body of a successful plan.
type ItineraryResponse struct {
	Success       bool                     `json:"success"`
	Stops         []CountryStop            `json:"stops"`
	RouteInfo     RouteInfo                `json:"route_info"`
	BudgetSummary enrichment.BudgetSummary `json:"budget_summary"`
	Warnings      []string                 `json:"warnings"`
	SeasonAlerts  []string                 `json:"season_alerts"`
	VisaAlerts    []string                 `json:"visa_alerts"`
}
