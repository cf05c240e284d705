package services

import (
	"sort"

	"trip-itinerary-service/internal/domain"
)

// SolveRoute orders a destination set into a closed tour starting and
// ending at home, and returns the tour plus its total length in km.
//
// Construction is nearest-neighbor with identifier tie-breaks, followed by
// a bounded 2-opt local search over the interior. This is a local search,
// not an exact solver: it reliably improves on nearest-neighbor but makes
// no optimality claim. The input set is never mutated.
func SolveRoute(catalog *domain.Catalog, destinations []string, home string) ([]string, float64) {
	return solveRoute(newDistanceCache(catalog), destinations, home)
}

// solveRoute is the cache-threading form used inside a planning request so
// the budget-enforcement loop reuses one distance cache across iterations.
func solveRoute(cache *distanceCache, destinations []string, home string) ([]string, float64) {
	route := nearestNeighborRoute(cache, destinations, home)
	route = twoOptImprove(cache, route)
	return route, cache.routeDistance(route)
}

// nearestNeighborRoute repeatedly appends the closest unvisited
// destination, starting from home and closing the tour back at home.
// An empty input yields [home, home].
func nearestNeighborRoute(cache *distanceCache, destinations []string, home string) []string {
	toVisit := make([]string, 0, len(destinations))
	for _, d := range destinations {
		if d != home {
			toVisit = append(toVisit, d)
		}
	}
	// Deterministic scan order regardless of how the caller built the set.
	sort.Strings(toVisit)

	route := make([]string, 0, len(toVisit)+2)
	route = append(route, home)
	current := home

	for len(toVisit) > 0 {
		bestIdx := -1
		bestDist := 0.0

		for i, d := range toVisit {
			dist := cache.between(current, d)
			// Ties resolve to the lexicographically smaller name, which the
			// sorted scan order already guarantees with a strict compare.
			if bestIdx < 0 || dist < bestDist {
				bestIdx = i
				bestDist = dist
			}
		}

		current = toVisit[bestIdx]
		route = append(route, current)
		toVisit = append(toVisit[:bestIdx], toVisit[bestIdx+1:]...)
	}

	route = append(route, home)
	return route
}

// twoOptImprove applies first-improvement segment reversals to the route
// interior until no reversal shortens the tour or the iteration cap is
// reached. The home endpoints are immutable.
func twoOptImprove(cache *distanceCache, route []string) []string {
	// Need at least two interior stops to have a reversal candidate.
	if len(route) <= 4 {
		return route
	}

	best := make([]string, len(route))
	copy(best, route)
	bestDist := cache.routeDistance(best)

	improved := true
	for iter := 0; improved && iter < twoOptMaxIterations; iter++ {
		improved = false

		for i := 1; i < len(best)-2; i++ {
			for j := i + 1; j < len(best)-1; j++ {
				trial := reverseSegment(best, i, j)
				trialDist := cache.routeDistance(trial)

				if trialDist < bestDist {
					best = trial
					bestDist = trialDist
					improved = true
				}
			}
		}
	}

	return best
}

// reverseSegment returns a copy of route with route[i..j] reversed.
func reverseSegment(route []string, i, j int) []string {
	out := make([]string, len(route))
	copy(out, route)
	for l, r := i, j; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}
