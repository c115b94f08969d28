package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != time.Hour {
		t.Fatalf("expected 1h, got %v", dur)
	}
	if label != "1h" {
		t.Fatalf("expected label 1h, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1d6h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 30*time.Hour + 30*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1d6h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	if _, _, err := ParseWindow("noop"); err == nil {
		t.Fatalf("expected error for invalid window")
	}
	if _, _, err := ParseWindow("0m"); err == nil {
		t.Fatalf("expected error for zero window")
	}
}

func TestCountdown(t *testing.T) {
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)
	tests := []struct {
		until time.Time
		want  string
	}{
		{now.Add(-time.Minute), "now"},
		{now, "now"},
		{now.Add(45 * time.Second), "45s"},
		{now.Add(90 * time.Minute), "1h30m"},
		{now.Add(23*time.Hour + 40*time.Minute + 30*time.Second), "23h40m"},
		{now.Add(26 * time.Hour), "1d2h"},
	}
	for _, tc := range tests {
		if got := Countdown(tc.until, now); got != tc.want {
			t.Errorf("Countdown(%v) = %q, want %q", tc.until.Sub(now), got, tc.want)
		}
	}
}
