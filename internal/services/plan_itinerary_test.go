package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"trip-itinerary-service/internal/domain"
)

func planningCatalog(t *testing.T) *domain.Catalog {
	return mustCatalog(t,
		dest("India", 28.6, 77.2, 0, 30, "culture", "food", "temples"),
		dest("Thailand", 13.7, 100.5, 400, 40, "beaches", "food", "temples"),
		dest("Vietnam", 21.0, 105.8, 450, 30, "food", "culture", "nature"),
		dest("Japan", 35.7, 139.7, 700, 90, "culture", "food", "technology"),
		dest("Indonesia", -6.2, 106.8, 500, 35, "beaches", "nature", "diving"),
	)
}

func TestPlanItineraryHappyPath(t *testing.T) {
	cat := planningCatalog(t)

	plan, err := PlanItinerary(cat, PlanItineraryRequest{
		Home:            "India",
		Interests:       []string{"food", "culture", "temples"},
		MaxDestinations: 3,
		Budget:          6000,
		TotalDays:       12,
	})
	require.NoError(t, err)
	require.True(t, plan.Feasible)

	require.Equal(t, "India", plan.Route[0])
	require.Equal(t, "India", plan.Route[len(plan.Route)-1])
	require.NotEmpty(t, plan.Route[1:len(plan.Route)-1])

	sum := 0
	for _, d := range plan.Days {
		require.GreaterOrEqual(t, d, MinDaysPerDestination)
		sum += d
	}
	require.Equal(t, 12, sum)

	require.LessOrEqual(t, plan.Breakdown.TotalCost, 6000.0)
	require.Positive(t, plan.TotalDistanceKM)
}

func TestPlanItineraryIdempotent(t *testing.T) {
	cat := planningCatalog(t)
	req := PlanItineraryRequest{
		Home:            "India",
		Interests:       []string{"food", "beaches", "culture"},
		MaxDestinations: 4,
		Budget:          5000,
		TotalDays:       14,
	}

	first, err := PlanItinerary(cat, req)
	require.NoError(t, err)
	second, err := PlanItinerary(cat, req)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestPlanItineraryWarnsOnBudgetOverrun(t *testing.T) {
	cat := planningCatalog(t)

	// The working budget only admits two stops; at the requested trip
	// length their allocated days push the total past the budget. The
	// plan survives (its minimum-stay cost fits) but the overrun must be
	// reported, never silently kept.
	plan, err := PlanItinerary(cat, PlanItineraryRequest{
		Home:            "India",
		Interests:       []string{"food", "culture", "temples", "technology"},
		MaxDestinations: 4,
		Budget:          2400,
		TotalDays:       10,
	})
	require.NoError(t, err)

	require.True(t, plan.Feasible)
	require.Len(t, plan.Route, 4)
	require.Contains(t, plan.Route, "Japan")
	require.Greater(t, plan.Breakdown.TotalCost, 2400.0)
	require.NotEmpty(t, plan.Warnings)
	require.Contains(t, plan.Warnings[len(plan.Warnings)-1], "exceeds budget")
}

func TestPlanItineraryNoFeasibleCandidates(t *testing.T) {
	cat := planningCatalog(t)

	plan, err := PlanItinerary(cat, PlanItineraryRequest{
		Home:            "India",
		Interests:       []string{"skiing"},
		MaxDestinations: 3,
		Budget:          5000,
		TotalDays:       10,
	})
	require.NoError(t, err)

	require.False(t, plan.Feasible)
	require.Equal(t, []string{"India", "India"}, plan.Route)
	require.Empty(t, plan.Days)
	require.NotEmpty(t, plan.Warnings)
	require.Contains(t, plan.Warnings[0], "raise the budget or broaden the interests")
}

func TestPlanItineraryContractViolations(t *testing.T) {
	cat := planningCatalog(t)

	_, err := PlanItinerary(cat, PlanItineraryRequest{
		Home: "Atlantis", Interests: []string{"x"}, MaxDestinations: 2, Budget: 100, TotalDays: 4,
	})
	require.ErrorIs(t, err, ErrUnknownHome)

	_, err = PlanItinerary(cat, PlanItineraryRequest{
		Home: "India", Interests: []string{"food"}, MaxDestinations: 3, Budget: 1000, TotalDays: 5,
	})
	require.ErrorIs(t, err, ErrAllocationUnderflow)

	_, err = PlanItinerary(cat, PlanItineraryRequest{
		Home: "India", Interests: nil, MaxDestinations: 3, Budget: 1000, TotalDays: 10,
	})
	require.Error(t, err)
}
