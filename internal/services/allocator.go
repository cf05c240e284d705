package services

import (
	"errors"
	"fmt"
	"sort"

	"trip-itinerary-service/internal/domain"
)

// ErrAllocationUnderflow reports a day budget too small to give every
// routed stop its minimum stay. Callers are expected to reject such
// requests before planning; the allocator refuses to under-allocate
// silently.
var ErrAllocationUnderflow = errors.New("total days below minimum stay for routed stops")

// AllocateDays distributes the trip length across the route's interior
// stops, weighted by interest overlap.
//
// Every stop receives at least MinDaysPerDestination. When any stop
// matches an interest, the remainder beyond the minimums is split
// proportionally to the interest scores; truncation loss is reclaimed by
// handing leftover days, one at a time, to stops ordered by score
// descending, current allocation ascending, then name. The result sums to
// exactly totalDays.
//
// When no stop matches any interest the days are split evenly (integer
// division) with the minimum-stay floor applied; that degenerate path may
// not hit totalDays exactly and is unreachable through the pipeline, which
// only admits positive-score destinations.
func AllocateDays(
	catalog *domain.Catalog,
	totalDays int,
	route []string,
	interests []string,
) (map[string]int, error) {
	if len(route) < 2 {
		return map[string]int{}, nil
	}
	interior := route[1 : len(route)-1]
	if len(interior) == 0 {
		return map[string]int{}, nil
	}

	if totalDays < len(interior)*MinDaysPerDestination {
		return nil, fmt.Errorf(
			"allocate days: %d days for %d stops: %w",
			totalDays, len(interior), ErrAllocationUnderflow,
		)
	}

	wanted := interestSet(interests)
	scores := make(map[string]int, len(interior))
	totalScore := 0
	for _, name := range interior {
		rec, _ := catalog.Lookup(name)
		s := interestScore(rec, wanted)
		scores[name] = s
		totalScore += s
	}

	days := make(map[string]int, len(interior))

	if totalScore == 0 {
		base := totalDays / len(interior)
		if base < MinDaysPerDestination {
			base = MinDaysPerDestination
		}
		for _, name := range interior {
			days[name] = base
		}
		return days, nil
	}

	// Minimum stay first, then the remainder proportionally by score.
	remaining := totalDays
	for _, name := range interior {
		days[name] = MinDaysPerDestination
		remaining -= MinDaysPerDestination
	}

	for _, name := range interior {
		days[name] += remaining * scores[name] / totalScore
	}

	// Truncation leaves fewer than len(interior) days unassigned; hand them
	// out one at a time so no day is silently dropped.
	assigned := 0
	for _, name := range interior {
		assigned += days[name]
	}
	leftover := totalDays - assigned

	order := make([]string, len(interior))
	copy(order, interior)
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if scores[a] != scores[b] {
			return scores[a] > scores[b]
		}
		if days[a] != days[b] {
			return days[a] < days[b]
		}
		return a < b
	})

	for _, name := range order {
		if leftover <= 0 {
			break
		}
		days[name]++
		leftover--
	}

	return days, nil
}
