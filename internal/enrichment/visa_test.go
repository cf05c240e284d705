package enrichment

import "testing"

func TestVisaFor(t *testing.T) {
	cases := []struct {
		home, dest, want string
	}{
		{"India", "India", "home"},
		{"India", "Nepal", "visa_free"},
		{"India", "Japan", "e_visa"},
		{"India", "USA", "visa_required"},
		{"USA", "Japan", "visa_free"},
		{"USA", "Vietnam", "visa_on_arrival"},
		{"Brazil", "Nepal", "visa_on_arrival"},
		{"Brazil", "Japan", "unknown"},
	}

	for _, tc := range cases {
		if got := VisaFor(tc.home, tc.dest); got.Requirement != tc.want {
			t.Fatalf("VisaFor(%s, %s) = %q, want %q", tc.home, tc.dest, got.Requirement, tc.want)
		}
	}
}
