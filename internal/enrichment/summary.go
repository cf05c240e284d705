package enrichment

import "math"

// BudgetSummary is the trip-level financial recap included in the
// itinerary response.
type BudgetSummary struct {
	TotalCost          float64  `json:"total_cost"`
	Budget             float64  `json:"budget"`
	Remaining          float64  `json:"remaining"`
	UtilizationPercent float64  `json:"utilization_percent"`
	AverageDailyCost   float64  `json:"average_daily_cost"`
	TotalDays          int      `json:"total_days"`
	CostSavingTips     []string `json:"cost_saving_tips"`
}

// SummarizeBudget computes utilization and remaining funds, attaching
// saving tips above 85% utilization and splurge suggestions when more
// than 500 USD is left over.
func SummarizeBudget(totalCost, budget float64, totalDays int) BudgetSummary {
	remaining := budget - totalCost

	utilization := 0.0
	if budget > 0 {
		utilization = totalCost / budget * 100
	}

	dailyAvg := 0.0
	if totalDays > 0 {
		dailyAvg = totalCost / float64(totalDays)
	}

	var tips []string
	switch {
	case utilization >= 85:
		tips = []string{
			"Consider hostels or guesthouses in expensive destinations",
			"Look for flight deals or alternative travel dates",
			"Research free activities and attractions",
			"Consider local transportation options",
		}
	case remaining > 500:
		tips = []string{
			"You have room to extend stays at favorite destinations",
			"Consider upgrading accommodation at key stops",
			"Budget available for special experiences and excursions",
		}
	}

	return BudgetSummary{
		TotalCost:          math.Round(totalCost*100) / 100,
		Budget:             budget,
		Remaining:          math.Round(remaining*100) / 100,
		UtilizationPercent: math.Round(utilization*10) / 10,
		AverageDailyCost:   math.Round(dailyAvg*100) / 100,
		TotalDays:          totalDays,
		CostSavingTips:     tips,
	}
}
