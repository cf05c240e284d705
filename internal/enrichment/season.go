// Package enrichment layers descriptive travel intelligence (seasons,
// currency conversion, visas, recommendations) over a finished itinerary.
// It consumes the planning engine's output and the catalog's descriptive
// fields; the engine has no dependency back on this package.
package enrichment

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// SeasonInfo rates one stop's dates against the destination's best season.
type SeasonInfo struct {
	IsBestSeason bool   `json:"is_best_season"`
	SeasonRating string `json:"season_rating"` // "ideal" | "partial" | "off-season"
	BestMonths   string `json:"best_months"`
	Warning      string `json:"warning,omitempty"`
	Tip          string `json:"tip,omitempty"`
}

// ParseSeasonMonths expands a season string like
// "March - May, September - November" into sorted month numbers.
// Wrap-around ranges ("November - March") are supported. Unparseable or
// empty input means every month qualifies.
func ParseSeasonMonths(season string) []time.Month {
	if strings.TrimSpace(season) == "" {
		return allMonths()
	}

	var months []time.Month
	seen := map[time.Month]struct{}{}
	add := func(m time.Month) {
		if _, ok := seen[m]; !ok {
			seen[m] = struct{}{}
			months = append(months, m)
		}
	}

	for _, rng := range strings.Split(season, ",") {
		parts := strings.Split(rng, "-")
		switch len(parts) {
		case 1:
			if m, ok := monthNames[normalizeMonth(parts[0])]; ok {
				add(m)
			}
		case 2:
			start, okStart := monthNames[normalizeMonth(parts[0])]
			end, okEnd := monthNames[normalizeMonth(parts[1])]
			if !okStart || !okEnd {
				continue
			}
			if start <= end {
				for m := start; m <= end; m++ {
					add(m)
				}
			} else {
				for m := start; m <= time.December; m++ {
					add(m)
				}
				for m := time.January; m <= end; m++ {
					add(m)
				}
			}
		}
	}

	if len(months) == 0 {
		return allMonths()
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}

func normalizeMonth(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func allMonths() []time.Month {
	out := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, m)
	}
	return out
}

// CheckSeason rates the [start, end] stay of one stop against the
// destination's best-season string. Ratings follow the overlap between
// travel months and best months: >=80% ideal, >=40% partial, otherwise
// off-season.
func CheckSeason(destination, bestSeason string, start, end time.Time) SeasonInfo {
	if strings.TrimSpace(bestSeason) == "" {
		return SeasonInfo{IsBestSeason: true, SeasonRating: "ideal", BestMonths: "Year-round"}
	}

	best := map[time.Month]struct{}{}
	for _, m := range ParseSeasonMonths(bestSeason) {
		best[m] = struct{}{}
	}

	travel := map[time.Month]struct{}{}
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		travel[cur.Month()] = struct{}{}
	}
	if len(travel) == 0 {
		travel[start.Month()] = struct{}{}
	}

	overlap := 0
	for m := range travel {
		if _, ok := best[m]; ok {
			overlap++
		}
	}
	ratio := float64(overlap) / float64(len(travel))

	switch {
	case ratio >= 0.8:
		return SeasonInfo{
			IsBestSeason: true,
			SeasonRating: "ideal",
			BestMonths:   bestSeason,
			Tip:          fmt.Sprintf("Great timing! %s is at its best during your visit.", destination),
		}
	case ratio >= 0.4:
		return SeasonInfo{
			SeasonRating: "partial",
			BestMonths:   bestSeason,
			Warning:      fmt.Sprintf("%s: your dates partially overlap with the best season (%s)", destination, bestSeason),
			Tip:          fmt.Sprintf("Consider adjusting dates for optimal weather in %s.", destination),
		}
	default:
		return SeasonInfo{
			SeasonRating: "off-season",
			BestMonths:   bestSeason,
			Warning:      fmt.Sprintf("%s: you're visiting during off-season; best time is %s", destination, bestSeason),
			Tip:          "Expect possible weather challenges, but fewer crowds and lower prices.",
		}
	}
}
