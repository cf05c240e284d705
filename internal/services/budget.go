package services

import (
	"fmt"
	"math"

	"trip-itinerary-service/internal/domain"
)

// destinationCost prices a single visit: travel in plus accommodation for
// the allocated days.
func destinationCost(rec domain.Destination, days int) domain.StopCost {
	accommodation := rec.AccommodationCost * float64(days)
	return domain.StopCost{
		Destination:       rec.Name,
		Days:              days,
		TravelCost:        rec.TravelCost,
		AccommodationCost: accommodation,
		Total:             rec.TravelCost + accommodation,
	}
}

// CostBreakdown prices a routed, day-allocated plan: every interior stop
// plus one return leg from the last interior stop back home. Stops missing
// from the allocation are priced at the minimum stay.
func CostBreakdown(catalog *domain.Catalog, route []string, days map[string]int) domain.CostBreakdown {
	out := domain.CostBreakdown{}
	if len(route) < 2 {
		return out
	}

	interior := route[1 : len(route)-1]
	out.Stops = make([]domain.StopCost, 0, len(interior))

	for _, name := range interior {
		rec, ok := catalog.Lookup(name)
		if !ok {
			continue
		}
		d, ok := days[name]
		if !ok {
			d = MinDaysPerDestination
		}
		stop := destinationCost(rec, d)
		out.Stops = append(out.Stops, stop)
		out.TotalCost += stop.Total
	}

	if len(interior) > 0 {
		last, ok := catalog.Lookup(interior[len(interior)-1])
		if ok {
			out.ReturnLeg = last.TravelCost
			out.TotalCost += last.TravelCost
		}
	}

	return out
}

// TotalTripCost is the breakdown's bottom line.
func TotalTripCost(catalog *domain.Catalog, route []string, days map[string]int) float64 {
	return CostBreakdown(catalog, route, days).TotalCost
}

// EnforceBudget trims a selected destination set until a routed,
// minimally-allocated plan fits the budget.
//
// Each failing iteration removes the destination with the worst value
// ratio, minimum visit cost over interest score (score zero ranks as
// infinitely bad) - never simply the last-added one, which could discard
// the cheapest, most relevant stop. Every removal is recorded as a
// warning. The working set strictly shrinks, so the loop terminates within
// len(selected) iterations; if a single remaining destination still
// exceeds the budget the result is empty and the warning names the
// minimum cost that could not be met.
//
// Iterations cost against the per-stop minimum stay; the caller applies
// the externally requested trip length once the surviving set is final.
func EnforceBudget(
	catalog *domain.Catalog,
	selected []string,
	home string,
	budget float64,
	interests []string,
) (final []string, warnings []string, days map[string]int) {
	working := make([]string, len(selected))
	copy(working, selected)
	warnings = []string{}

	// One distance cache for the whole enforcement run; re-routing after a
	// removal reuses every distance already computed.
	cache := newDistanceCache(catalog)

	for len(working) > 0 {
		route, _ := solveRoute(cache, working, home)

		totalDays := len(working) * MinDaysPerDestination
		if totalDays < 1 {
			totalDays = 1
		}
		alloc, err := AllocateDays(catalog, totalDays, route, interests)
		if err != nil {
			// Unreachable: totalDays covers the minimum stay by construction.
			alloc = map[string]int{}
		}

		totalCost := TotalTripCost(catalog, route, alloc)
		if totalCost <= budget {
			return working, warnings, alloc
		}

		if len(working) <= 1 {
			warnings = append(warnings, fmt.Sprintf(
				"budget %.0f is insufficient even for one destination; minimum needed: %.0f",
				budget, totalCost,
			))
			return nil, warnings, map[string]int{}
		}

		worst := worstValueDestination(catalog, working, interests)
		rec, _ := catalog.Lookup(worst)
		warnings = append(warnings, fmt.Sprintf(
			"removed %s (minimum cost %.0f) to stay within budget",
			worst, MinimumVisitCost(rec),
		))
		working = removeName(working, worst)
	}

	return nil, warnings, map[string]int{}
}

// worstValueDestination finds the stop with the highest minimum cost per
// matched interest. Ties keep the earliest entry in working order, which
// selection emits sorted by name.
func worstValueDestination(catalog *domain.Catalog, working []string, interests []string) string {
	wanted := interestSet(interests)

	worst := working[0]
	worstRatio := -1.0

	for _, name := range working {
		rec, _ := catalog.Lookup(name)
		score := interestScore(rec, wanted)

		ratio := math.Inf(1)
		if score > 0 {
			ratio = MinimumVisitCost(rec) / float64(score)
		}

		if ratio > worstRatio {
			worstRatio = ratio
			worst = name
		}
	}

	return worst
}

func removeName(names []string, target string) []string {
	out := make([]string, 0, len(names)-1)
	for _, n := range names {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}
