package services

import "testing"

func TestPerDayCost(t *testing.T) {
	tests := []struct {
		totalCost, dayCount, want int
	}{
		{142000, 5, 28400},
		{100, 1, 100},
		{200, 3, 67}, // 66.67 rounds up
		{100, 3, 33},
		{1, 2, 1}, // half rounds up
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := PerDayCost(tt.totalCost, tt.dayCount); got != tt.want {
			t.Errorf("PerDayCost(%d, %d) = %d, want %d", tt.totalCost, tt.dayCount, got, tt.want)
		}
	}
}

func TestBuildBudgetOverview(t *testing.T) {
	s := NewSynthesizer(NewPresetStore(), "Mumbai")
	it := s.Synthesize("Mumbai")

	overview := BuildBudgetOverview(it)
	if overview.TotalCost != 142000 || overview.Savings != 8000 {
		t.Errorf("overview = %+v, want stub totals", overview)
	}
	if overview.PerDayCost != 28400 {
		t.Errorf("per day = %d, want 28400 (142000 over 5 days)", overview.PerDayCost)
	}
}

func TestComputeBudgetBreakdown(t *testing.T) {
	it := Itinerary{
		DayCount: 2,
		Days: []DayPlan{
			{
				Day: 1,
				Activities: []Activity{
					{Place: "a", Cost: 100},
					{Place: "b", Cost: 200},
				},
				Dining: []Dining{{Name: "x", PricePerPerson: 300}},
			},
			{
				Day:        2,
				Activities: []Activity{{Place: "c", Cost: 0}},
				Dining:     []Dining{{Name: "y", PricePerPerson: 100}},
			},
		},
	}

	b := ComputeBudgetBreakdown(it, 1000)
	if b.ActivitiesCost != 300 {
		t.Errorf("activities = %d, want 300", b.ActivitiesCost)
	}
	if b.DiningCost != 400 {
		t.Errorf("dining = %d, want 400", b.DiningCost)
	}
	if b.TransportationCost != 100 {
		t.Errorf("transportation = %d, want 100 (10%% of budget)", b.TransportationCost)
	}
	if b.TotalCost != 800 {
		t.Errorf("total = %d, want 800", b.TotalCost)
	}
	if b.RemainingBudget != 200 {
		t.Errorf("remaining = %d, want 200", b.RemainingBudget)
	}
	if b.CostPerDay != 400 {
		t.Errorf("per day = %d, want 400", b.CostPerDay)
	}
}
