package handlers

import (
	"net/http"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
)

// CountryHandler exposes the read-only destination catalog.
type CountryHandler struct {
	Catalog *domain.Catalog
}

func (h *CountryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	names := h.Catalog.Names()
	res := dto.AvailableDataResponse{
		Countries:      make([]dto.CountryInfo, 0, len(names)),
		AllInterests:   h.Catalog.Interests(),
		TotalCountries: len(names),
	}

	for _, name := range names {
		d, ok := h.Catalog.Lookup(name)
		if !ok {
			continue
		}
		cities := d.TopCities
		if cities == nil {
			cities = []string{}
		}
		res.Countries = append(res.Countries, dto.CountryInfo{
			Name:                 d.Name,
			Flag:                 d.Flag,
			Interests:            d.Interests,
			AvgTravelCost:        d.TravelCost,
			AvgAccommodationCost: d.AccommodationCost,
			Coordinates:          []float64{d.Coordinates.Lat, d.Coordinates.Lon},
			BestSeason:           d.BestSeason,
			SafetyScore:          d.SafetyScore,
			Currency:             d.Currency,
			TopCities:            cities,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
