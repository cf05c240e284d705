package enrichment

import (
	"testing"
	"time"
)

func TestRecommendationsFor(t *testing.T) {
	rec := RecommendationsFor(thailandRecord(), []string{"food", "temples", "skiing"}, 4, date(2026, time.December, 1))

	if len(rec.MatchingInterests) != 2 {
		t.Fatalf("MatchingInterests = %v, want food and temples", rec.MatchingInterests)
	}
	if rec.InterestMatchPct != 67 {
		t.Fatalf("InterestMatchPct = %d, want 67", rec.InterestMatchPct)
	}

	if len(rec.SuggestedActivities) == 0 || len(rec.SuggestedActivities) > 8 {
		t.Fatalf("activity count = %d, want 1..8 for a 4-day stay", len(rec.SuggestedActivities))
	}
	for i := 1; i < len(rec.SuggestedActivities); i++ {
		prev := priorityRank[rec.SuggestedActivities[i-1].Priority]
		cur := priorityRank[rec.SuggestedActivities[i].Priority]
		if prev > cur {
			t.Fatalf("activities not ordered by priority: %v", rec.SuggestedActivities)
		}
	}

	// 4 days // 2 = 2 cities, 2 suggested days each.
	if len(rec.RecommendedCities) != 2 {
		t.Fatalf("RecommendedCities = %v, want 2 picks", rec.RecommendedCities)
	}
	if rec.RecommendedCities[0].Name != "Bangkok" || rec.RecommendedCities[0].SuggestedDays != 2 {
		t.Fatalf("first city pick = %+v, want Bangkok for 2 days", rec.RecommendedCities[0])
	}

	foundModest := false
	for _, tip := range rec.PackingTips {
		if tip == "Modest clothing for temple visits (cover shoulders/knees)" {
			foundModest = true
		}
	}
	if !foundModest {
		t.Fatalf("packing tips missing temple item: %v", rec.PackingTips)
	}
	if len(rec.PackingTips) > 8 {
		t.Fatalf("packing tips exceed cap: %v", rec.PackingTips)
	}
}
