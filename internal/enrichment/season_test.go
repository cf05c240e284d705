package enrichment

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseSeasonMonths(t *testing.T) {
	cases := []struct {
		name   string
		season string
		want   []time.Month
	}{
		{
			"two ranges",
			"March - May, September - November",
			[]time.Month{time.March, time.April, time.May, time.September, time.October, time.November},
		},
		{
			"wrap around",
			"November - March",
			[]time.Month{time.January, time.February, time.March, time.November, time.December},
		},
		{
			"single month",
			"July",
			[]time.Month{time.July},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseSeasonMonths(tc.season)
			if len(got) != len(tc.want) {
				t.Fatalf("ParseSeasonMonths(%q) = %v, want %v", tc.season, got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("ParseSeasonMonths(%q) = %v, want %v", tc.season, got, tc.want)
				}
			}
		})
	}

	if got := ParseSeasonMonths(""); len(got) != 12 {
		t.Fatalf("empty season should allow all months, got %v", got)
	}
	if got := ParseSeasonMonths("not a month"); len(got) != 12 {
		t.Fatalf("unparseable season should allow all months, got %v", got)
	}
}

func TestCheckSeasonRatings(t *testing.T) {
	best := "November - March"

	ideal := CheckSeason("Thailand", best, date(2026, time.December, 1), date(2026, time.December, 20))
	if !ideal.IsBestSeason || ideal.SeasonRating != "ideal" {
		t.Fatalf("December stay rated %q, want ideal", ideal.SeasonRating)
	}
	if ideal.Warning != "" {
		t.Fatalf("ideal rating should carry no warning, got %q", ideal.Warning)
	}

	// March into April: one of two travel months overlaps.
	partial := CheckSeason("Thailand", best, date(2026, time.March, 20), date(2026, time.April, 10))
	if partial.SeasonRating != "partial" {
		t.Fatalf("March-April stay rated %q, want partial", partial.SeasonRating)
	}
	if partial.Warning == "" {
		t.Fatal("partial rating should carry a warning")
	}

	off := CheckSeason("Thailand", best, date(2026, time.July, 1), date(2026, time.July, 15))
	if off.SeasonRating != "off-season" {
		t.Fatalf("July stay rated %q, want off-season", off.SeasonRating)
	}

	blank := CheckSeason("Anywhere", "", date(2026, time.July, 1), date(2026, time.July, 5))
	if !blank.IsBestSeason || blank.BestMonths != "Year-round" {
		t.Fatalf("blank season = %+v, want year-round ideal", blank)
	}
}
