package enrichment

import "testing"

func TestSummarizeBudget(t *testing.T) {
	tight := SummarizeBudget(900, 1000, 10)
	if tight.UtilizationPercent != 90.0 {
		t.Fatalf("UtilizationPercent = %v, want 90.0", tight.UtilizationPercent)
	}
	if tight.AverageDailyCost != 90.0 {
		t.Fatalf("AverageDailyCost = %v, want 90.0", tight.AverageDailyCost)
	}
	if len(tight.CostSavingTips) == 0 {
		t.Fatal("high utilization should carry saving tips")
	}

	loose := SummarizeBudget(1000, 2000, 10)
	if loose.Remaining != 1000 {
		t.Fatalf("Remaining = %v, want 1000", loose.Remaining)
	}
	if len(loose.CostSavingTips) == 0 {
		t.Fatal("large remainder should carry splurge tips")
	}

	middle := SummarizeBudget(800, 1200, 10)
	if len(middle.CostSavingTips) != 0 {
		t.Fatalf("middling utilization should carry no tips, got %v", middle.CostSavingTips)
	}
}
