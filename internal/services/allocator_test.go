package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocateDaysEmptyInterior(t *testing.T) {
	cat := mustCatalog(t, dest("Home", 0, 0, 100, 50, "x"))

	days, err := AllocateDays(cat, 10, []string{"Home", "Home"}, []string{"x"})
	require.NoError(t, err)
	require.Empty(t, days)
}

func TestAllocateDaysEqualSplitWithoutScores(t *testing.T) {
	cat := mustCatalog(t,
		dest("Home", 0, 0, 100, 50, "beaches"),
		dest("A", 10, 10, 100, 50, "beaches"),
		dest("B", 20, 20, 100, 50, "beaches"),
		dest("C", 30, 30, 100, 50, "beaches"),
	)
	route := []string{"Home", "A", "B", "C", "Home"}

	days, err := AllocateDays(cat, 9, route, []string{"skiing"})
	require.NoError(t, err)
	require.Equal(t, map[string]int{"A": 3, "B": 3, "C": 3}, days)
}

func TestAllocateDaysExactSumAndFloors(t *testing.T) {
	cat := mustCatalog(t,
		dest("Home", 0, 0, 100, 50, "culture"),
		dest("A", 10, 10, 100, 50, "culture", "food", "art"),
		dest("B", 20, 20, 100, 50, "culture"),
		dest("C", 30, 30, 100, 50, "culture", "food"),
	)
	route := []string{"Home", "A", "B", "C", "Home"}
	interests := []string{"culture", "food", "art"}

	for _, totalDays := range []int{6, 7, 10, 13, 21} {
		days, err := AllocateDays(cat, totalDays, route, interests)
		require.NoError(t, err)

		sum := 0
		for name, d := range days {
			require.GreaterOrEqual(t, d, MinDaysPerDestination, "stop %s", name)
			sum += d
		}
		require.Equal(t, totalDays, sum, "totalDays=%d", totalDays)
	}
}

func TestAllocateDaysWeightsByScore(t *testing.T) {
	cat := mustCatalog(t,
		dest("Home", 0, 0, 100, 50, "culture"),
		dest("A", 10, 10, 100, 50, "culture", "food", "art"),
		dest("B", 20, 20, 100, 50, "culture"),
	)
	route := []string{"Home", "A", "B", "Home"}

	days, err := AllocateDays(cat, 12, route, []string{"culture", "food", "art"})
	require.NoError(t, err)
	// Minimums 2+2, remainder 8 split 3:1 -> A gets 6 extra, B gets 2.
	require.Equal(t, map[string]int{"A": 8, "B": 4}, days)
}

func TestAllocateDaysLeftoverOrder(t *testing.T) {
	cat := mustCatalog(t,
		dest("Home", 0, 0, 100, 50, "culture"),
		dest("X", 10, 10, 100, 50, "culture", "food"),
		dest("Y", 20, 20, 100, 50, "culture"),
		dest("Z", 30, 30, 100, 50, "food"),
	)
	route := []string{"Home", "X", "Y", "Z", "Home"}
	interests := []string{"culture", "food"}

	// Scores X=2, Y=1, Z=1, total 4. Minimums take 6 of 9; the remainder 3
	// truncates to X+1, leaving 2 leftover days. Leftover order is score
	// descending, then allocation ascending, then name: X, then Y before Z.
	days, err := AllocateDays(cat, 9, route, interests)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"X": 4, "Y": 3, "Z": 2}, days)
}

func TestAllocateDaysUnderflowFailsLoudly(t *testing.T) {
	cat := mustCatalog(t,
		dest("Home", 0, 0, 100, 50, "culture"),
		dest("A", 10, 10, 100, 50, "culture"),
		dest("B", 20, 20, 100, 50, "culture"),
		dest("C", 30, 30, 100, 50, "culture"),
	)
	route := []string{"Home", "A", "B", "C", "Home"}

	_, err := AllocateDays(cat, 5, route, []string{"culture"})
	require.ErrorIs(t, err, ErrAllocationUnderflow)
}
