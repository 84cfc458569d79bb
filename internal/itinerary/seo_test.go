package itinerary

import "testing"

func dayWith(n int) Day {
	acts := make([]Activity, n)
	for i := range acts {
		acts[i] = Activity{Name: "a"}
	}
	return Day{Activities: acts}
}

func TestIsSEOEligible(t *testing.T) {
	cases := []struct {
		name string
		p    *Program
		want bool
	}{
		{"nil", nil, false},
		{"no days", &Program{}, false},
		{"two full days", &Program{Days: []Day{dayWith(1), dayWith(2)}}, false},
		{"three full days", &Program{Days: []Day{dayWith(1), dayWith(1), dayWith(1)}}, true},
		{"three days one empty", &Program{Days: []Day{dayWith(1), dayWith(0), dayWith(3)}}, false},
		{"five days", &Program{Days: []Day{dayWith(2), dayWith(1), dayWith(1), dayWith(4), dayWith(1)}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSEOEligible(tc.p); got != tc.want {
				t.Fatalf("IsSEOEligible = %v, want %v", got, tc.want)
			}
		})
	}
}
