package enrichment

import (
	"testing"

	"trip-itinerary-service/internal/domain"
)

func thailandRecord() domain.Destination {
	return domain.Destination{
		Name:              "Thailand",
		Coordinates:       domain.Coordinates{Lat: 13.7, Lon: 100.5},
		TravelCost:        400,
		AccommodationCost: 40,
		Interests:         []string{"beaches", "food", "temples", "nightlife"},
		Currency:          "THB",
		TopCities:         []string{"Bangkok", "Chiang Mai", "Phuket", "Krabi", "Ayutthaya"},
	}
}

func TestCurrencyFor(t *testing.T) {
	info := CurrencyFor(thailandRecord(), 1000)
	if info.CurrencyCode != "THB" {
		t.Fatalf("CurrencyCode = %q, want THB", info.CurrencyCode)
	}
	if info.BudgetLocal != 35500 {
		t.Fatalf("BudgetLocal = %v, want 35500", info.BudgetLocal)
	}

	unknown := domain.Destination{Name: "X", Currency: "XXX"}
	if got := CurrencyFor(unknown, 100); got.BudgetLocal != 100 {
		t.Fatalf("unknown currency should fall back to 1:1, got %v", got.BudgetLocal)
	}
}

func TestSpendingGuideFor(t *testing.T) {
	guide := SpendingGuideFor(thailandRecord(), 5)
	if guide.CurrencyCode != "THB" {
		t.Fatalf("CurrencyCode = %q, want THB", guide.CurrencyCode)
	}
	// 40 USD/night * 1.9 (accommodation + 40% meals + 20% transport +
	// 30% activities) * 35.50 THB = 2698 per day.
	if guide.DailyTotalLocal != 2698 {
		t.Fatalf("DailyTotalLocal = %v, want 2698", guide.DailyTotalLocal)
	}
	if guide.TotalLocal != 13490 {
		t.Fatalf("TotalLocal = %v, want 13490", guide.TotalLocal)
	}
}
