package services

// Planning parameters. These mirror the catalog's cost model: every stop
// costs at least MinDaysPerDestination nights of accommodation, and a
// slice of the budget is held back for the return leg before any
// destination is selected.
const (
	// MinDaysPerDestination is the minimum stay at any routed stop.
	MinDaysPerDestination = 2

	// MaxDestinations bounds how many stops a single request may ask for.
	MaxDestinations = 15

	// budgetSafetyMargin reserves 10% of the budget as a safety buffer
	// before selection.
	budgetSafetyMargin = 0.9

	// twoOptMaxIterations caps the 2-opt improvement passes.
	twoOptMaxIterations = 100

	// knapsackGranularity discretizes costs (in budget units) to bound
	// the DP table.
	knapsackGranularity = 10

	// knapsackMaxCandidates is the candidate count above which selection
	// falls back to the greedy heuristic.
	knapsackMaxCandidates = 50

	// earthRadiusKM is the Earth radius used by the haversine formula.
	earthRadiusKM = 6371.0
)
