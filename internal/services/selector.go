package services

import (
	"math"
	"sort"

	"trip-itinerary-service/internal/domain"
)

// candidate is a request-scoped projection of a catalog record: its
// interest-match score and the minimum cost of including it at all.
type candidate struct {
	name    string
	score   int
	minCost float64
}

// interestSet converts an interest list to a set for overlap counting.
func interestSet(interests []string) map[string]struct{} {
	set := make(map[string]struct{}, len(interests))
	for _, tag := range interests {
		set[tag] = struct{}{}
	}
	return set
}

// interestScore counts how many of the traveler's interests a destination
// matches.
func interestScore(d domain.Destination, interests map[string]struct{}) int {
	score := 0
	for _, tag := range d.Interests {
		if _, ok := interests[tag]; ok {
			score++
		}
	}
	return score
}

// MinimumVisitCost is the cheapest possible visit to a destination:
// travel in plus accommodation for the minimum stay.
func MinimumVisitCost(d domain.Destination) float64 {
	return d.TravelCost + d.AccommodationCost*MinDaysPerDestination
}

// SelectDestinations chooses a budget-feasible destination set maximizing
// interest coverage.
//
// A 10% safety margin and the catalog's worst-case return travel cost are
// subtracted from the budget before selection. Sets of up to 50 candidates
// are solved exactly with 0/1 knapsack dynamic programming; larger catalogs
// fall back to a greedy pass. The cardinality cap is exactly maxCount:
// no slot is reserved implicitly, callers request the count they mean.
//
// The result is sorted by name. For identical inputs the output is
// identical; candidates are enumerated in catalog name order and all
// tie-breaks are by identifier.
func SelectDestinations(
	catalog *domain.Catalog,
	interests []string,
	maxCount int,
	home string,
	budget float64,
) []string {
	wanted := interestSet(interests)

	candidates := make([]candidate, 0, catalog.Len())
	for _, name := range catalog.Names() {
		if name == home {
			continue
		}
		rec, _ := catalog.Lookup(name)
		score := interestScore(rec, wanted)
		if score == 0 {
			continue
		}
		candidates = append(candidates, candidate{
			name:    name,
			score:   score,
			minCost: MinimumVisitCost(rec),
		})
	}

	if len(candidates) == 0 {
		return nil
	}

	// Hold back the safety margin and a worst-case return leg before any
	// destination is chosen.
	workingBudget := budget*budgetSafetyMargin - catalog.MaxTravelCost()
	if workingBudget <= 0 {
		return nil
	}

	var selected []string
	if len(candidates) <= knapsackMaxCandidates {
		selected = knapsackSelect(candidates, workingBudget, maxCount)
	} else {
		selected = greedySelect(candidates, workingBudget, maxCount)
	}

	sort.Strings(selected)
	return selected
}

// knapsackSelect solves the selection exactly: item weight is the minimum
// visit cost discretized to knapsackGranularity units, item value is the
// interest score, and the item count is capped at maxItems.
// Complexity O(n * W/granularity * maxItems).
func knapsackSelect(candidates []candidate, budget float64, maxItems int) []string {
	capacity := int(budget / knapsackGranularity)
	n := len(candidates)

	if capacity <= 0 || maxItems <= 0 {
		return nil
	}

	type cell struct {
		score int
		count int
	}

	dp := make([][]cell, n+1)
	chosen := make([][]bool, n+1)
	for i := 0; i <= n; i++ {
		dp[i] = make([]cell, capacity+1)
		chosen[i] = make([]bool, capacity+1)
	}

	for i := 1; i <= n; i++ {
		costUnits := int(candidates[i-1].minCost / knapsackGranularity)
		score := candidates[i-1].score

		for w := 0; w <= capacity; w++ {
			dp[i][w] = dp[i-1][w]

			if costUnits > w {
				continue
			}
			prev := dp[i-1][w-costUnits]
			if prev.count >= maxItems {
				continue
			}
			if prev.score+score > dp[i][w].score {
				dp[i][w] = cell{score: prev.score + score, count: prev.count + 1}
				chosen[i][w] = true
			}
		}
	}

	// Backtrack to recover the chosen item set.
	selected := make([]string, 0, maxItems)
	w := capacity
	for i := n; i >= 1; i-- {
		if !chosen[i][w] {
			continue
		}
		selected = append(selected, candidates[i-1].name)
		w -= int(candidates[i-1].minCost / knapsackGranularity)
	}

	return selected
}

// greedySelect is the fallback for large candidate sets: sort by score
// descending, then cost per interest point ascending, then name, and accept
// while under budget and under the count cap.
func greedySelect(candidates []candidate, budget float64, maxItems int) []string {
	ordered := make([]candidate, len(candidates))
	copy(ordered, candidates)

	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.score != b.score {
			return a.score > b.score
		}
		ra := costPerPoint(a)
		rb := costPerPoint(b)
		if ra != rb {
			return ra < rb
		}
		return a.name < b.name
	})

	selected := make([]string, 0, maxItems)
	totalCost := 0.0

	for _, c := range ordered {
		if len(selected) >= maxItems {
			break
		}
		if totalCost+c.minCost > budget {
			continue
		}
		selected = append(selected, c.name)
		totalCost += c.minCost
	}

	return selected
}

func costPerPoint(c candidate) float64 {
	if c.score <= 0 {
		return math.Inf(1)
	}
	return c.minCost / float64(c.score)
}
