package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/enrichment"
	"trip-itinerary-service/internal/platform/obs"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

const dateLayout = "2006-01-02"

// Human-readable stop dates, e.g. "March 05, 2026".
const stopDateLayout = "January 02, 2006"

var validate = validator.New()

// ItineraryHandler generates enriched travel itineraries.
type ItineraryHandler struct {
	Catalog  *domain.Catalog
	Cache    ports.PlanCache
	CacheTTL time.Duration
}

func (h *ItineraryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ItineraryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	req.HomeCountry = strings.TrimSpace(req.HomeCountry)

	if err := validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}
	if !end.After(start) {
		writeError(w, r, http.StatusBadRequest, "end_date must be after start_date")
		return
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1
	if totalDays < req.NumCountries*services.MinDaysPerDestination {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf(
			"not enough days (%d) for %d countries; need at least %d days (%d per country)",
			totalDays, req.NumCountries,
			req.NumCountries*services.MinDaysPerDestination,
			services.MinDaysPerDestination,
		))
		return
	}

	key := cacheKey(req)
	if h.Cache != nil {
		if payload, ok, err := h.Cache.Get(r.Context(), key); err != nil {
			log.Printf("plan cache get failed: %v", err)
		} else if ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(payload)
			return
		}
	}

	done := obs.Time(r.Context(), "plan_itinerary")
	plan, err := services.PlanItinerary(h.Catalog, services.PlanItineraryRequest{
		Home:            req.HomeCountry,
		Interests:       req.Interests,
		MaxDestinations: req.NumCountries,
		Budget:          req.Budget,
		TotalDays:       totalDays,
	})
	done(&err)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownHome):
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf(
				"unknown country: %s; available: %s",
				req.HomeCountry, strings.Join(h.Catalog.Names(), ", "),
			))
		case errors.Is(err, services.ErrAllocationUnderflow):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			log.Printf("plan itinerary failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	res := h.buildResponse(req, plan, start, totalDays)

	if h.Cache != nil && res.Success {
		if payload, err := json.Marshal(res); err == nil {
			if err := h.Cache.Put(r.Context(), key, payload, h.CacheTTL); err != nil {
				log.Printf("plan cache put failed: %v", err)
			}
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

// buildResponse walks the interior stops, attaching running dates and
// intelligence enrichment to each.
func (h *ItineraryHandler) buildResponse(req dto.ItineraryRequest, plan *domain.Itinerary, start time.Time, totalDays int) dto.ItineraryResponse {
	if !plan.Feasible {
		return dto.ItineraryResponse{
			Success: false,
			Stops:   []dto.CountryStop{},
			RouteInfo: dto.RouteInfo{
				Route:        []string{},
				RouteDisplay: "No route",
			},
			BudgetSummary: enrichment.BudgetSummary{
				Budget:         req.Budget,
				Remaining:      req.Budget,
				TotalDays:      totalDays,
				CostSavingTips: []string{"Increase your budget or select different interests"},
			},
			Warnings:     plan.Warnings,
			SeasonAlerts: []string{},
			VisaAlerts:   []string{},
		}
	}

	stops := make([]dto.CountryStop, 0, len(plan.Breakdown.Stops))
	seasonAlerts := []string{}
	visaAlerts := []string{}
	current := start

	for _, sc := range plan.Breakdown.Stops {
		d, ok := h.Catalog.Lookup(sc.Destination)
		if !ok {
			continue
		}
		stopEnd := current.AddDate(0, 0, sc.Days-1)

		seasonInfo := enrichment.CheckSeason(d.Name, d.BestSeason, current, stopEnd)
		if seasonInfo.Warning != "" {
			seasonAlerts = append(seasonAlerts, seasonInfo.Warning)
		}

		currencyInfo := enrichment.CurrencyFor(d, sc.Total)
		spendingGuide := enrichment.SpendingGuideFor(d, sc.Days)

		visaInfo := enrichment.VisaFor(req.HomeCountry, d.Name)
		if visaInfo.Requirement == "visa_required" || visaInfo.Requirement == "e_visa" {
			visaAlerts = append(visaAlerts, fmt.Sprintf("%s: %s - %s", d.Name, visaInfo.Label, visaInfo.Note))
		}

		recs := enrichment.RecommendationsFor(d, req.Interests, sc.Days, current)

		cities := d.TopCities
		if cities == nil {
			cities = []string{}
		}

		stops = append(stops, dto.CountryStop{
			Country:           d.Name,
			Flag:              d.Flag,
			Days:              sc.Days,
			StartDate:         current.Format(stopDateLayout),
			EndDate:           stopEnd.Format(stopDateLayout),
			TravelCost:        sc.TravelCost,
			AccommodationCost: sc.AccommodationCost,
			TotalCost:         sc.Total,
			Interests:         d.Interests,
			Coordinates:       []float64{d.Coordinates.Lat, d.Coordinates.Lon},
			BestSeason:        d.BestSeason,
			SafetyScore:       d.SafetyScore,
			Currency:          d.Currency,
			TopCities:         cities,
			SeasonInfo:        &seasonInfo,
			CurrencyInfo:      &currencyInfo,
			SpendingGuide:     &spendingGuide,
			VisaInfo:          &visaInfo,
			Recommendations:   &recs,
		})

		current = stopEnd.AddDate(0, 0, 1)
	}

	warnings := plan.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return dto.ItineraryResponse{
		Success: true,
		Stops:   stops,
		RouteInfo: dto.RouteInfo{
			Route:           plan.Route,
			RouteDisplay:    strings.Join(plan.Route, " → "),
			TotalDistanceKM: roundTo(plan.TotalDistanceKM, 1),
		},
		BudgetSummary: enrichment.SummarizeBudget(plan.Breakdown.TotalCost, req.Budget, totalDays),
		Warnings:      warnings,
		SeasonAlerts:  seasonAlerts,
		VisaAlerts:    visaAlerts,
	}
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// cacheKey digests the request into a stable key. Interests are sorted
// and deduplicated so equivalent requests share an entry.
func cacheKey(req dto.ItineraryRequest) string {
	interests := make([]string, 0, len(req.Interests))
	seen := map[string]struct{}{}
	for _, tag := range req.Interests {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		interests = append(interests, tag)
	}
	sort.Strings(interests)

	canonical := fmt.Sprintf("%s|%d|%s|%.2f|%s|%s",
		req.HomeCountry, req.NumCountries, strings.Join(interests, ","),
		req.Budget, req.StartDate, req.EndDate,
	)
	sum := sha256.Sum256([]byte(canonical))
	return "plan:" + hex.EncodeToString(sum[:])
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}

	fe := verrs[0]
	switch fe.Field() {
	case "HomeCountry":
		return "home_country is required"
	case "NumCountries":
		return "num_countries must be between 1 and 15"
	case "Interests":
		return "interests must contain at least one entry"
	case "Budget":
		return "budget must be greater than zero"
	case "StartDate":
		return "start_date must be YYYY-MM-DD"
	case "EndDate":
		return "end_date must be YYYY-MM-DD"
	default:
		return "invalid request"
	}
}
