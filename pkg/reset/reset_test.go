package reset

import (
	"testing"
	"time"

	"pxgdaily/pkg/period"
)

func testRules(t *testing.T) Rules {
	t.Helper()
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return Rules{Location: loc, Hour: 7, Minute: 40}
}

func TestComputeResetAtDaily(t *testing.T) {
	r := testRules(t)
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, r.Location)

	got := r.ComputeResetAt(period.Daily, "Hunt", now)
	want := time.Date(2024, time.March, 6, 7, 40, 0, 0, r.Location)
	if !got.Equal(want) {
		t.Errorf("daily reset = %s, want %s", got, want)
	}
}

func TestComputeResetAtWeeklyAlwaysNextBoundary(t *testing.T) {
	r := testRules(t)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			// Monday 06:00, before today's reset time: still next Monday.
			"monday before reset time",
			time.Date(2024, time.March, 4, 6, 0, 0, 0, r.Location),
			time.Date(2024, time.March, 11, 7, 40, 0, 0, r.Location),
		},
		{
			"midweek",
			time.Date(2024, time.March, 7, 15, 0, 0, 0, r.Location),
			time.Date(2024, time.March, 11, 7, 40, 0, 0, r.Location),
		},
		{
			"sunday",
			time.Date(2024, time.March, 10, 23, 0, 0, 0, r.Location),
			time.Date(2024, time.March, 11, 7, 40, 0, 0, r.Location),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.ComputeResetAt(period.Weekly, "Raid", tc.now)
			if !got.Equal(tc.want) {
				t.Errorf("weekly reset = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestComputeResetAtMonthly(t *testing.T) {
	r := testRules(t)
	now := time.Date(2024, time.March, 15, 18, 30, 0, 0, r.Location)

	got := r.ComputeResetAt(period.Monthly, "Grind", now)
	want := time.Date(2024, time.April, 1, 7, 40, 0, 0, r.Location)
	if !got.Equal(want) {
		t.Errorf("monthly reset = %s, want %s", got, want)
	}

	// December rolls over to January of the next year.
	now = time.Date(2024, time.December, 20, 10, 0, 0, 0, r.Location)
	got = r.ComputeResetAt(period.Monthly, "Grind", now)
	want = time.Date(2025, time.January, 1, 7, 40, 0, 0, r.Location)
	if !got.Equal(want) {
		t.Errorf("monthly reset across year = %s, want %s", got, want)
	}
}

func TestComputeResetAtRollingWindow(t *testing.T) {
	r := testRules(t)
	now := time.Date(2024, time.March, 5, 14, 22, 10, 0, r.Location)

	got := r.ComputeResetAt(period.Monthly, "Clones", now)
	want := time.Date(2024, time.April, 4, 14, 22, 10, 0, r.Location)
	if !got.Equal(want) {
		t.Errorf("rolling reset = %s, want %s", got, want)
	}

	// Title matching is trim + lowercase.
	got = r.ComputeResetAt(period.Monthly, "  CLONES  ", now)
	if !got.Equal(want) {
		t.Errorf("rolling reset with messy title = %s, want %s", got, want)
	}
}
