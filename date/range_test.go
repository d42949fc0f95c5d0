package date

import (
	"testing"
	"time"
)

func TestRange_Contains(t *testing.T) {
	r := Range{From: MustParse("2024-03-01"), To: MustParse("2024-03-31")}

	testCases := []struct {
		name string
		day  Date
		want bool
	}{
		{"before range", MustParse("2024-02-29"), false},
		{"lower boundary", MustParse("2024-03-01"), true},
		{"inside", MustParse("2024-03-15"), true},
		{"upper boundary", MustParse("2024-03-31"), true},
		{"after range", MustParse("2024-04-01"), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.day); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.day, got, tc.want)
			}
		})
	}
}

func TestMonthOf(t *testing.T) {
	r := MonthOf(time.February, 2024)
	if r.From != New(2024, time.February, 1) {
		t.Errorf("MonthOf From = %v", r.From)
	}
	// 2024 is a leap year.
	if r.To != New(2024, time.February, 29) {
		t.Errorf("MonthOf To = %v", r.To)
	}
}

func TestRange_Days(t *testing.T) {
	r := Range{From: MustParse("2024-03-30"), To: MustParse("2024-04-02")}
	days := r.Days()
	if len(days) != 4 {
		t.Fatalf("Days() returned %d days, want 4", len(days))
	}
	if days[0] != r.From || days[3] != r.To {
		t.Errorf("Days() boundaries = %v..%v, want %v..%v", days[0], days[3], r.From, r.To)
	}

	if got := (Range{From: MustParse("2024-04-02"), To: MustParse("2024-04-01")}).Days(); got != nil {
		t.Errorf("inverted range Days() = %v, want nil", got)
	}
}
