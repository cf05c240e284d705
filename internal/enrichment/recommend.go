package enrichment

import (
	"math"
	"sort"
	"strings"
	"time"

	"trip-itinerary-service/internal/domain"
)

// Activity is one suggested thing to do at a stop.
type Activity struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Priority string `json:"priority"` // high | medium | low
	Interest string `json:"interest"`
}

// CityPick recommends one city and how long to spend there.
type CityPick struct {
	Name          string `json:"name"`
	SuggestedDays int    `json:"suggested_days"`
}

// Recommendations bundles everything suggested for a single stop.
type Recommendations struct {
	SuggestedActivities []Activity `json:"suggested_activities"`
	RecommendedCities   []CityPick `json:"recommended_cities"`
	PackingTips         []string   `json:"packing_tips"`
	MatchingInterests   []string   `json:"matching_interests"`
	InterestMatchPct    int        `json:"interest_match_pct"`
}

var activityCatalog = map[string][]Activity{
	"culture": {
		{Name: "Visit local museums & galleries", Duration: "Half day", Priority: "high"},
		{Name: "Attend a traditional performance", Duration: "Evening", Priority: "medium"},
		{Name: "Join a cultural walking tour", Duration: "3-4 hours", Priority: "high"},
	},
	"food": {
		{Name: "Take a cooking class", Duration: "Half day", Priority: "high"},
		{Name: "Street food tour", Duration: "3-4 hours", Priority: "high"},
		{Name: "Fine dining experience", Duration: "Evening", Priority: "medium"},
	},
	"beaches": {
		{Name: "Beach hopping day", Duration: "Full day", Priority: "high"},
		{Name: "Sunset beach walk", Duration: "2 hours", Priority: "medium"},
		{Name: "Water sports / snorkeling", Duration: "Half day", Priority: "high"},
	},
	"nature": {
		{Name: "Guided nature hike", Duration: "Full day", Priority: "high"},
		{Name: "National park visit", Duration: "Full day", Priority: "high"},
		{Name: "Sunrise viewpoint trip", Duration: "2 hours", Priority: "medium"},
	},
	"adventure": {
		{Name: "Adventure sports experience", Duration: "Half day", Priority: "high"},
		{Name: "Zip-lining or paragliding", Duration: "3-4 hours", Priority: "medium"},
		{Name: "Multi-day trekking", Duration: "2-3 days", Priority: "low"},
	},
	"temples": {
		{Name: "Temple complex tour", Duration: "Half day", Priority: "high"},
		{Name: "Sunrise temple visit", Duration: "3 hours", Priority: "high"},
		{Name: "Meditation retreat session", Duration: "Half day", Priority: "low"},
	},
	"historical": {
		{Name: "Historical landmark tour", Duration: "Full day", Priority: "high"},
		{Name: "Archaeological site visit", Duration: "Half day", Priority: "high"},
		{Name: "History museum deep-dive", Duration: "3-4 hours", Priority: "medium"},
	},
	"nightlife": {
		{Name: "Nightlife district exploration", Duration: "Evening", Priority: "high"},
		{Name: "Rooftop bar hopping", Duration: "Evening", Priority: "medium"},
		{Name: "Live music venue", Duration: "Evening", Priority: "medium"},
	},
	"shopping": {
		{Name: "Local market exploration", Duration: "Half day", Priority: "high"},
		{Name: "Artisan & craft shopping", Duration: "3-4 hours", Priority: "medium"},
		{Name: "Shopping district tour", Duration: "Half day", Priority: "medium"},
	},
	"wildlife": {
		{Name: "Wildlife safari / tour", Duration: "Full day", Priority: "high"},
		{Name: "Wildlife sanctuary visit", Duration: "Half day", Priority: "high"},
		{Name: "Bird watching excursion", Duration: "3-4 hours", Priority: "low"},
	},
	"diving": {
		{Name: "Scuba diving excursion", Duration: "Full day", Priority: "high"},
		{Name: "Snorkeling trip", Duration: "Half day", Priority: "high"},
		{Name: "Glass-bottom boat tour", Duration: "3 hours", Priority: "low"},
	},
	"technology": {
		{Name: "Tech district / hub visit", Duration: "Half day", Priority: "high"},
		{Name: "Innovation museum or expo", Duration: "3-4 hours", Priority: "medium"},
		{Name: "Smart city tour", Duration: "Half day", Priority: "low"},
	},
	"art": {
		{Name: "Art gallery tour", Duration: "Half day", Priority: "high"},
		{Name: "Street art walking tour", Duration: "3 hours", Priority: "high"},
		{Name: "Art workshop / class", Duration: "3-4 hours", Priority: "medium"},
	},
	"architecture": {
		{Name: "Architecture walking tour", Duration: "Half day", Priority: "high"},
		{Name: "Iconic building visits", Duration: "3-4 hours", Priority: "high"},
		{Name: "Modern vs. historic contrast tour", Duration: "Full day", Priority: "medium"},
	},
	"islands": {
		{Name: "Island hopping day trip", Duration: "Full day", Priority: "high"},
		{Name: "Beach & lagoon exploration", Duration: "Full day", Priority: "high"},
		{Name: "Boat tour / sailing", Duration: "Half day", Priority: "medium"},
	},
	"hiking": {
		{Name: "Day hike to scenic trail", Duration: "Full day", Priority: "high"},
		{Name: "Guided mountain trek", Duration: "Full day", Priority: "high"},
		{Name: "Multi-day trekking route", Duration: "2-3 days", Priority: "low"},
	},
	"wellness": {
		{Name: "Spa & massage experience", Duration: "Half day", Priority: "high"},
		{Name: "Yoga or meditation class", Duration: "2 hours", Priority: "high"},
		{Name: "Hot springs visit", Duration: "Half day", Priority: "medium"},
	},
	"skiing": {
		{Name: "Ski resort day pass", Duration: "Full day", Priority: "high"},
		{Name: "Snowboarding session", Duration: "Half day", Priority: "high"},
		{Name: "Apres-ski experience", Duration: "Evening", Priority: "medium"},
	},
	"mountains": {
		{Name: "Mountain viewpoint visit", Duration: "Half day", Priority: "high"},
		{Name: "Cable car or gondola ride", Duration: "3 hours", Priority: "high"},
		{Name: "Alpine lake hike", Duration: "Full day", Priority: "medium"},
	},
	"desert": {
		{Name: "Desert safari excursion", Duration: "Full day", Priority: "high"},
		{Name: "Camel ride & dune experience", Duration: "Half day", Priority: "high"},
		{Name: "Desert stargazing night", Duration: "Evening", Priority: "medium"},
	},
	"festivals": {
		{Name: "Attend local festival or celebration", Duration: "Full day", Priority: "high"},
		{Name: "Cultural carnival experience", Duration: "Evening", Priority: "high"},
		{Name: "Night market festival", Duration: "Evening", Priority: "medium"},
	},
	"surfing": {
		{Name: "Surfing lesson or session", Duration: "Half day", Priority: "high"},
		{Name: "Beach & surf culture tour", Duration: "Full day", Priority: "medium"},
		{Name: "Stand-up paddleboarding", Duration: "2 hours", Priority: "medium"},
	},
}

var priorityRank = map[string]int{"high": 0, "medium": 1, "low": 2}

// RecommendationsFor builds activity, city, and packing suggestions for
// one stop from the traveler's interests, the stay length, and the
// arrival date.
func RecommendationsFor(d domain.Destination, interests []string, days int, arrival time.Time) Recommendations {
	matching := matchingInterests(d.Interests, interests)

	denom := len(interests)
	if denom == 0 {
		denom = 1
	}
	pct := int(math.Round(float64(len(matching)) / float64(denom) * 100))

	return Recommendations{
		SuggestedActivities: suggestActivities(matching, days),
		RecommendedCities:   suggestCities(d.TopCities, days),
		PackingTips:         suggestPacking(d, arrival),
		MatchingInterests:   matching,
		InterestMatchPct:    pct,
	}
}

func matchingInterests(offered, wanted []string) []string {
	have := map[string]struct{}{}
	for _, tag := range offered {
		have[tag] = struct{}{}
	}
	var out []string
	seen := map[string]struct{}{}
	for _, tag := range wanted {
		if _, ok := have[tag]; !ok {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func suggestActivities(matching []string, days int) []Activity {
	var activities []Activity
	for _, interest := range matching {
		for _, act := range activityCatalog[interest] {
			// Multi-day activities only fit longer stays.
			if strings.Contains(strings.ToLower(act.Duration), "days") && days < 4 {
				continue
			}
			act.Interest = interest
			activities = append(activities, act)
		}
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return priorityRank[activities[i].Priority] < priorityRank[activities[j].Priority]
	})

	limit := days * 2
	if limit > 12 {
		limit = 12
	}
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}

func suggestCities(topCities []string, days int) []CityPick {
	if len(topCities) == 0 {
		return nil
	}

	maxCities := days / 2
	if maxCities > len(topCities) {
		maxCities = len(topCities)
	}
	if maxCities > 4 {
		maxCities = 4
	}
	if maxCities == 0 {
		return nil
	}

	perCity := days / maxCities
	if perCity < 1 {
		perCity = 1
	}

	picks := make([]CityPick, 0, maxCities)
	for _, city := range topCities[:maxCities] {
		picks = append(picks, CityPick{Name: city, SuggestedDays: perCity})
	}
	return picks
}

func suggestPacking(d domain.Destination, arrival time.Time) []string {
	tips := []string{"Passport & travel documents", "Travel adapter for local outlets"}

	month := arrival.Month()
	lat := d.Coordinates.Lat
	northern := lat > 0

	winter := month == time.December || month == time.January || month == time.February
	summer := month == time.June || month == time.July || month == time.August
	if !northern {
		winter, summer = summer, winter
	}
	tropical := math.Abs(lat) < 23.5

	switch {
	case tropical:
		tips = append(tips, "Light, breathable clothing", "Strong sunscreen (SPF 50+)", "Insect repellent")
	case winter:
		tips = append(tips, "Warm layers & jacket", "Thermal undergarments", "Waterproof boots")
	case summer:
		tips = append(tips, "Light summer clothing", "Sunscreen & sunglasses", "Hat for sun protection")
	default:
		tips = append(tips, "Layered clothing for variable weather", "Light rain jacket")
	}

	offers := map[string]struct{}{}
	for _, tag := range d.Interests {
		offers[tag] = struct{}{}
	}
	if _, ok := offers["beaches"]; ok {
		tips = append(tips, "Swimwear & quick-dry towel")
	} else if _, ok := offers["islands"]; ok {
		tips = append(tips, "Swimwear & quick-dry towel")
	}
	if _, ok := offers["adventure"]; ok {
		tips = append(tips, "Comfortable hiking shoes")
	} else if _, ok := offers["nature"]; ok {
		tips = append(tips, "Comfortable hiking shoes")
	}
	if _, ok := offers["temples"]; ok {
		tips = append(tips, "Modest clothing for temple visits (cover shoulders/knees)")
	}
	if _, ok := offers["diving"]; ok {
		tips = append(tips, "Reef-safe sunscreen")
	}

	if len(tips) > 8 {
		tips = tips[:8]
	}
	return tips
}
