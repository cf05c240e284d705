package services

import (
	"errors"
	"fmt"

	"trip-itinerary-service/internal/domain"
)

// ErrUnknownHome reports a home destination missing from the catalog.
var ErrUnknownHome = errors.New("home destination not in catalog")

// PlanItineraryRequest is the engine's input contract. The surrounding
// handler validates field shapes; the engine re-checks the invariants it
// depends on.
type PlanItineraryRequest struct {
	Home            string
	Interests       []string
	MaxDestinations int
	Budget          float64
	TotalDays       int
}

// PlanItinerary runs the full pipeline: select destinations under the
// working budget, route them, allocate the requested days, and - if the
// fully-allocated plan overruns the budget - trim worst-value stops and
// re-plan until it fits.
//
// Infeasible outcomes are not errors: they come back as an Itinerary with
// Feasible=false, route [home, home] and a warning suggesting a remedy.
// Errors are reserved for contract violations (unknown home, day budget
// below the minimum stay floor).
func PlanItinerary(catalog *domain.Catalog, req PlanItineraryRequest) (*domain.Itinerary, error) {
	if _, ok := catalog.Lookup(req.Home); !ok {
		return nil, fmt.Errorf("plan itinerary: %q: %w", req.Home, ErrUnknownHome)
	}
	if len(req.Interests) == 0 {
		return nil, errors.New("plan itinerary: interests must be non-empty")
	}
	if req.MaxDestinations < 1 || req.MaxDestinations > MaxDestinations {
		return nil, fmt.Errorf("plan itinerary: max destinations %d out of range [1,%d]",
			req.MaxDestinations, MaxDestinations)
	}
	if req.Budget <= 0 {
		return nil, errors.New("plan itinerary: budget must be positive")
	}
	if req.TotalDays < req.MaxDestinations*MinDaysPerDestination {
		return nil, fmt.Errorf(
			"plan itinerary: %d days for up to %d destinations: %w",
			req.TotalDays, req.MaxDestinations, ErrAllocationUnderflow,
		)
	}

	selected := SelectDestinations(catalog, req.Interests, req.MaxDestinations, req.Home, req.Budget)
	if len(selected) == 0 {
		return infeasibleItinerary(req.Home,
			"budget too low for any destination matching your interests; raise the budget or broaden the interests",
		), nil
	}

	route, distKM := SolveRoute(catalog, selected, req.Home)
	days, err := AllocateDays(catalog, req.TotalDays, route, req.Interests)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	warnings := []string{}

	if TotalTripCost(catalog, route, days) > req.Budget {
		final, enforceWarnings, _ := EnforceBudget(catalog, selected, req.Home, req.Budget, req.Interests)
		warnings = append(warnings, enforceWarnings...)

		if len(final) == 0 {
			it := infeasibleItinerary(req.Home)
			it.Warnings = append(it.Warnings, warnings...)
			return it, nil
		}

		// The surviving set changes both the optimal tour and the day
		// weights, so route and allocation are rebuilt from scratch with
		// the externally requested trip length.
		route, distKM = SolveRoute(catalog, final, req.Home)
		days, err = AllocateDays(catalog, req.TotalDays, route, req.Interests)
		if err != nil {
			return nil, fmt.Errorf("plan itinerary: re-allocate after enforcement: %w", err)
		}
	}

	breakdown := CostBreakdown(catalog, route, days)

	// The enforcement loop prices iterations at the minimum stay, so a
	// plan can survive it yet overrun the budget once the full trip
	// length is allocated. That outcome is reported, not silently kept.
	if breakdown.TotalCost > req.Budget {
		warnings = append(warnings, fmt.Sprintf(
			"planned cost %.0f exceeds budget %.0f at the requested trip length; shorten the trip or raise the budget",
			breakdown.TotalCost, req.Budget,
		))
	}

	return &domain.Itinerary{
		Feasible:        true,
		Route:           route,
		Days:            days,
		Warnings:        warnings,
		Breakdown:       breakdown,
		TotalDistanceKM: distKM,
	}, nil
}

func infeasibleItinerary(home string, warnings ...string) *domain.Itinerary {
	return &domain.Itinerary{
		Feasible: false,
		Route:    []string{home, home},
		Days:     map[string]int{},
		Warnings: append([]string{}, warnings...),
	}
}
