package enrichment

import "fmt"

// VisaInfo describes the entry requirement for one home/destination pair.
type VisaInfo struct {
	Requirement string `json:"requirement"` // visa_free | visa_on_arrival | e_visa | visa_required | home | unknown
	Label       string `json:"label"`
	Color       string `json:"color"`
	Note        string `json:"note"`
}

type visaPolicy struct {
	visaFree      []string
	visaOnArrival []string
	eVisa         []string
	visaRequired  []string
}

// Simplified static visa matrix keyed by passport country. Destinations
// absent from every list resolve to "unknown".
var visaPolicies = map[string]visaPolicy{
	"India": {
		visaFree: []string{
			"Bhutan", "Nepal", "Maldives", "Indonesia", "Thailand",
			"Sri Lanka", "Malaysia", "Singapore", "Oman", "Jordan",
			"Cambodia", "Vietnam", "Philippines", "Kenya", "Tanzania",
		},
		visaOnArrival: []string{
			"Thailand", "Indonesia", "Cambodia", "Maldives", "Sri Lanka",
			"Jordan", "Oman", "Tanzania", "Kenya", "Nepal",
		},
		eVisa: []string{
			"Turkey", "UAE", "Australia", "Vietnam", "Taiwan",
			"South Korea", "Japan", "New Zealand", "United Kingdom",
		},
		visaRequired: []string{
			"USA", "Canada", "France", "Germany", "Italy", "Spain",
			"Portugal", "Switzerland", "Norway", "Iceland", "Czechia",
			"Croatia", "Greece", "United Kingdom",
		},
	},
	"USA": {
		visaFree: []string{
			"Canada", "Mexico", "United Kingdom", "France", "Germany",
			"Italy", "Spain", "Portugal", "Switzerland", "Norway",
			"Iceland", "Czechia", "Croatia", "Greece", "Japan",
			"South Korea", "Taiwan", "Singapore", "Malaysia", "Thailand",
			"Indonesia", "Philippines", "Israel", "UAE", "Oman",
			"Jordan", "Turkey", "Morocco", "South Africa", "Brazil",
			"Argentina", "Colombia", "Peru", "Chile", "New Zealand",
			"Australia",
		},
		visaOnArrival: []string{
			"Cambodia", "Nepal", "Maldives", "Sri Lanka", "Tanzania",
			"Kenya", "Vietnam",
		},
		eVisa:        []string{"India", "Vietnam", "Australia", "Turkey"},
		visaRequired: []string{"China", "Bhutan", "Egypt"},
	},
}

var defaultVisaPolicy = visaPolicy{
	visaOnArrival: []string{"Nepal", "Maldives", "Cambodia", "Indonesia"},
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// VisaFor resolves the visa requirement for travel from home to
// destination. Lists are checked in order of convenience so a
// destination on several lists reports the easiest option.
func VisaFor(home, destination string) VisaInfo {
	if home == destination {
		return VisaInfo{
			Requirement: "home",
			Label:       "Home Country",
			Color:       "blue",
			Note:        "No visa needed, this is your home country.",
		}
	}

	policy, ok := visaPolicies[home]
	if !ok {
		policy = defaultVisaPolicy
	}

	switch {
	case contains(policy.visaFree, destination):
		return VisaInfo{
			Requirement: "visa_free",
			Label:       "Visa Free",
			Color:       "green",
			Note:        fmt.Sprintf("No visa required for %s citizens visiting %s.", home, destination),
		}
	case contains(policy.visaOnArrival, destination):
		return VisaInfo{
			Requirement: "visa_on_arrival",
			Label:       "Visa on Arrival",
			Color:       "green",
			Note:        fmt.Sprintf("Visa available on arrival for %s citizens. Bring passport photos and fee.", home),
		}
	case contains(policy.eVisa, destination):
		return VisaInfo{
			Requirement: "e_visa",
			Label:       "e-Visa",
			Color:       "yellow",
			Note:        "Apply for e-Visa online before travel. Processing usually takes 3-7 business days.",
		}
	case contains(policy.visaRequired, destination):
		return VisaInfo{
			Requirement: "visa_required",
			Label:       "Visa Required",
			Color:       "red",
			Note:        "Embassy or consulate visa required. Apply well in advance (4-8 weeks recommended).",
		}
	default:
		return VisaInfo{
			Requirement: "unknown",
			Label:       "Check Requirements",
			Color:       "gray",
			Note:        fmt.Sprintf("Please verify visa requirements for %s to %s with your local embassy.", home, destination),
		}
	}
}
