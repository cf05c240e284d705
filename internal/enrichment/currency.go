package enrichment

import (
	"fmt"
	"math"

	"trip-itinerary-service/internal/domain"
)

// Embedded USD exchange-rate snapshot. Good enough for planning-level
// estimates; no external rate API is consulted.
var exchangeRates = map[string]float64{
	"USD": 1.0, "EUR": 0.92, "GBP": 0.79, "JPY": 149.50,
	"INR": 83.10, "AUD": 1.53, "CAD": 1.36, "CHF": 0.88,
	"CNY": 7.24, "SGD": 1.34, "MYR": 4.72, "THB": 35.50,
	"IDR": 15650.0, "VND": 24500.0, "KRW": 1320.0, "TWD": 31.50,
	"PHP": 56.20, "LKR": 320.0, "NPR": 133.0, "BDT": 110.0,
	"MVR": 15.40, "AED": 3.67, "SAR": 3.75, "OMR": 0.385,
	"QAR": 3.64, "BHD": 0.376, "KWD": 0.308, "JOD": 0.709,
	"ILS": 3.65, "TRY": 30.50, "EGP": 30.90, "MAD": 10.10,
	"ZAR": 18.80, "KES": 153.0, "TZS": 2520.0, "NGN": 1200.0,
	"BRL": 4.97, "MXN": 17.15, "ARS": 830.0, "COP": 3950.0,
	"PEN": 3.72, "CLP": 880.0, "ISK": 138.0, "NOK": 10.55,
	"SEK": 10.45, "DKK": 6.88, "PLN": 4.05, "CZK": 22.80,
	"HUF": 355.0, "RON": 4.58, "BGN": 1.80, "KHR": 4100.0,
	"LAK": 20800.0, "MMK": 2100.0, "BTN": 83.10, "NZD": 1.63,
	"FJD": 2.24, "MUR": 45.0, "SCR": 13.50,
}

// CurrencyInfo converts a USD amount into a destination's local currency.
type CurrencyInfo struct {
	CurrencyCode string  `json:"currency_code"`
	ExchangeRate float64 `json:"exchange_rate"`
	BudgetLocal  float64 `json:"budget_local"`
	Formatted    string  `json:"formatted"`
}

// SpendingGuide estimates per-day spending in local currency, derived
// from the destination's nightly accommodation cost.
type SpendingGuide struct {
	CurrencyCode            string  `json:"currency_code"`
	DailyAccommodationLocal float64 `json:"daily_accommodation_local"`
	DailyMealsLocal         float64 `json:"daily_meals_local"`
	DailyTransportLocal     float64 `json:"daily_transport_local"`
	DailyActivitiesLocal    float64 `json:"daily_activities_local"`
	DailyTotalLocal         float64 `json:"daily_total_local"`
	TotalLocal              float64 `json:"total_local"`
}

func rateFor(currency string) (string, float64) {
	if currency == "" {
		return "USD", 1.0
	}
	if rate, ok := exchangeRates[currency]; ok {
		return currency, rate
	}
	return currency, 1.0
}

// CurrencyFor converts budgetUSD to the destination's currency.
func CurrencyFor(d domain.Destination, budgetUSD float64) CurrencyInfo {
	code, rate := rateFor(d.Currency)
	local := budgetUSD * rate
	return CurrencyInfo{
		CurrencyCode: code,
		ExchangeRate: math.Round(rate*100) / 100,
		BudgetLocal:  math.Round(local),
		Formatted:    fmt.Sprintf("%.0f %s", local, code),
	}
}

// SpendingGuideFor estimates daily meals at 40%, transport at 20%, and
// activities at 30% of the nightly accommodation cost, all in local
// currency.
func SpendingGuideFor(d domain.Destination, days int) SpendingGuide {
	code, rate := rateFor(d.Currency)

	accom := d.AccommodationCost
	meals := accom * 0.4
	transport := accom * 0.2
	activities := accom * 0.3
	dailyTotal := accom + meals + transport + activities

	return SpendingGuide{
		CurrencyCode:            code,
		DailyAccommodationLocal: math.Round(accom * rate),
		DailyMealsLocal:         math.Round(meals * rate),
		DailyTransportLocal:     math.Round(transport * rate),
		DailyActivitiesLocal:    math.Round(activities * rate),
		DailyTotalLocal:         math.Round(dailyTotal * rate),
		TotalLocal:              math.Round(dailyTotal * rate * float64(days)),
	}
}
