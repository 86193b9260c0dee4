package services

import "math"

// ─── Presentation Model ───────────────────────────────────────────────────────

// BudgetOverview holds the display aggregates the budget cards render.
// Values come straight off the document; PerDayCost is the only derivation.
type BudgetOverview struct {
	TotalCost  int `json:"total_cost"`
	Savings    int `json:"savings"`
	PerDayCost int `json:"per_day_cost"`
}

// PerDayCost rounds half up. dayCount >= 1 holds for every synthesized
// document, so there is no division-by-zero path; zero is returned
// defensively for malformed input.
func PerDayCost(totalCost, dayCount int) int {
	if dayCount < 1 {
		return 0
	}
	return int(math.Round(float64(totalCost) / float64(dayCount)))
}

func BuildBudgetOverview(it Itinerary) BudgetOverview {
	return BudgetOverview{
		TotalCost:  it.TotalCost,
		Savings:    it.Savings,
		PerDayCost: PerDayCost(it.TotalCost, it.DayCount),
	}
}

// ─── Budget Breakdown ─────────────────────────────────────────────────────────

// BudgetBreakdown is the computed alternative to the document's stub
// totals: real sums over activity costs and per-person dining prices, plus
// a flat transportation estimate.
type BudgetBreakdown struct {
	ActivitiesCost     int `json:"activities_cost"`
	DiningCost         int `json:"dining_cost"`
	TransportationCost int `json:"transportation_cost"`
	TotalCost          int `json:"total_cost"`
	RemainingBudget    int `json:"remaining_budget"`
	CostPerDay         int `json:"cost_per_day"`
}

// ComputeBudgetBreakdown sums the generated content against a caller-supplied
// budget. Transportation is estimated at 10% of the budget.
func ComputeBudgetBreakdown(it Itinerary, totalBudget int) BudgetBreakdown {
	var activities, dining int
	for _, day := range it.Days {
		for _, a := range day.Activities {
			activities += a.Cost
		}
		for _, d := range day.Dining {
			dining += d.PricePerPerson
		}
	}

	transportation := totalBudget / 10
	total := activities + dining + transportation

	return BudgetBreakdown{
		ActivitiesCost:     activities,
		DiningCost:         dining,
		TransportationCost: transportation,
		TotalCost:          total,
		RemainingBudget:    totalBudget - total,
		CostPerDay:         PerDayCost(total, it.DayCount),
	}
}
