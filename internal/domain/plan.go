package domain

// StopCost is the cost of one visited destination: travel into it plus
// accommodation for the allocated days.
type StopCost struct {
	Destination       string
	Days              int
	TravelCost        float64
	AccommodationCost float64
	Total             float64
}

// CostBreakdown is a derived projection of a routed, day-allocated plan.
// It is recomputed on demand and owned by nobody.
type CostBreakdown struct {
	Stops     []StopCost
	ReturnLeg float64
	TotalCost float64
}

// Itinerary is the planning engine's final output: a closed tour starting
// and ending at the home destination, a per-stop day allocation summing to
// the requested trip length, and the warnings accumulated while trimming
// the plan down to budget.
//
// Feasible is false when no destination set fits the budget; the route is
// then [home, home] and the allocation is empty.
type Itinerary struct {
	Feasible        bool
	Route           []string
	Days            map[string]int
	Warnings        []string
	Breakdown       CostBreakdown
	TotalDistanceKM float64
}
