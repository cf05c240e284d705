package api

import (
	"net/http"
	"time"

	"trip-itinerary-service/internal/api/handlers"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// planCache may be nil to disable response caching.
func NewRouter(catalog *domain.Catalog, planCache ports.PlanCache, cacheTTL time.Duration) http.Handler {
	mux := http.NewServeMux()

	countryHandler := &handlers.CountryHandler{Catalog: catalog}
	itineraryHandler := &handlers.ItineraryHandler{
		Catalog:  catalog,
		Cache:    planCache,
		CacheTTL: cacheTTL,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/countries", countryHandler.List)
	mux.HandleFunc("/api/generate-itinerary", itineraryHandler.Generate)

	return requestIDMiddleware(loggingMiddleware(mux))
}
