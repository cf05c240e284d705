package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"trip-itinerary-service/internal/domain"
)

// enforcementCatalog: three stops on one meridian with minimum visit costs
// 500, 800 and 1200 and interest scores 1, 4 and 1.
func enforcementCatalog(t *testing.T) *domain.Catalog {
	return mustCatalog(t,
		dest("Home", 0, 0, 50, 10, "home"),
		dest("A", 20, 0, 300, 100, "t1"),
		dest("B", 10, 0, 400, 200, "t1", "t2", "t3", "t4"),
		dest("C", 5, 0, 1000, 100, "t4"),
	)
}

func TestCostBreakdownIncludesReturnLeg(t *testing.T) {
	cat := enforcementCatalog(t)
	route := []string{"Home", "B", "A", "Home"}
	days := map[string]int{"B": 3, "A": 2}

	got := CostBreakdown(cat, route, days)

	// B: 400 + 3*200 = 1000; A: 300 + 2*100 = 500; return leg = A travel.
	require.Len(t, got.Stops, 2)
	require.Equal(t, 1000.0, got.Stops[0].Total)
	require.Equal(t, 500.0, got.Stops[1].Total)
	require.Equal(t, 300.0, got.ReturnLeg)
	require.Equal(t, 1800.0, got.TotalCost)
}

func TestEnforceBudgetRemovesWorstValueFirst(t *testing.T) {
	cat := enforcementCatalog(t)
	interests := []string{"t1", "t2", "t3", "t4"}

	// Value ratios: A=500/1, B=800/4=200, C=1200/1. C must go before A
	// even though C was not added last and A is cheaper in absolute terms.
	final, warnings, days := EnforceBudget(cat, []string{"A", "B", "C"}, "Home", 1700, interests)

	require.ElementsMatch(t, []string{"A", "B"}, final)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "C")
	require.Contains(t, warnings[0], "1200")
	require.Equal(t, map[string]int{"A": 2, "B": 2}, days)
}

func TestEnforceBudgetKeepsFeasiblePlanUntouched(t *testing.T) {
	cat := enforcementCatalog(t)
	interests := []string{"t1", "t2", "t3", "t4"}

	final, warnings, days := EnforceBudget(cat, []string{"A", "B", "C"}, "Home", 100000, interests)

	require.Equal(t, []string{"A", "B", "C"}, final)
	require.Empty(t, warnings)
	require.Equal(t, 6, days["A"]+days["B"]+days["C"])
}

func TestEnforceBudgetInfeasibleAtSingleDestination(t *testing.T) {
	cat := enforcementCatalog(t)

	final, warnings, days := EnforceBudget(cat, []string{"C"}, "Home", 100, []string{"t4"})

	require.Empty(t, final)
	require.Empty(t, days)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "insufficient even for one destination")
}

func TestEnforceBudgetShrinksMonotonically(t *testing.T) {
	cat := enforcementCatalog(t)
	interests := []string{"t1", "t2", "t3", "t4"}
	initial := []string{"A", "B", "C"}

	// An impossible budget walks the loop all the way down; one warning
	// per removal plus the final infeasibility warning, never more than
	// the initial count allows.
	final, warnings, _ := EnforceBudget(cat, initial, "Home", 1, interests)

	require.Empty(t, final)
	require.Len(t, warnings, len(initial))
	require.Contains(t, warnings[0], "C")
	require.Contains(t, warnings[1], "A")
	require.Contains(t, warnings[2], "insufficient even for one destination")
}

func TestEnforceBudgetDoesNotMutateInput(t *testing.T) {
	cat := enforcementCatalog(t)
	selected := []string{"A", "B", "C"}

	EnforceBudget(cat, selected, "Home", 1700, []string{"t1", "t2", "t3", "t4"})
	require.Equal(t, []string{"A", "B", "C"}, selected)
}
