package tracker

import (
	"testing"
	"time"

	"pxgdaily/pkg/period"
)

// boardFixture interleaves periods, halves, and an archived task so splice
// tests can assert that unrelated positions never move.
func boardFixture(now time.Time) Character {
	done := FormatInstant(now.Add(time.Hour))
	return Character{
		ID:   "c1",
		Name: "Main",
		Tasks: []Task{
			{ID: "d1", Title: "Hunt", Period: period.Daily},                        // 0: daily open
			{ID: "w1", Title: "Raid", Period: period.Weekly},                       // 1: weekly open
			{ID: "d2", Title: "Fishing", Period: period.Daily},                     // 2: daily open
			{ID: "d3", Title: "Quest", Period: period.Daily, ResetAt: done},        // 3: daily done
			{ID: "a1", Title: "Old", Period: period.Daily, ArchivedAt: "2024-01-01T00:00:00Z"}, // 4: archived
			{ID: "d4", Title: "Errand", Period: period.Daily},                      // 5: daily open
		},
	}
}

func taskIDs(c Character) []string {
	ids := make([]string, len(c.Tasks))
	for i, t := range c.Tasks {
		ids[i] = t.ID
	}
	return ids
}

func TestReorderSplicesOnlyTheSubgroup(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	c := boardFixture(now)

	changed := Reorder(&c, period.Daily, []string{"d4", "d1", "d2"}, HalfOpen, now)
	if !changed {
		t.Fatal("expected reorder to change the sequence")
	}

	want := []string{"d4", "w1", "d1", "d3", "a1", "d2"}
	got := taskIDs(c)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("positions = %v, want %v", got, want)
		}
	}
}

func TestReorderPreservesIDSet(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	c := boardFixture(now)
	before := make(map[string]bool)
	for _, id := range taskIDs(c) {
		before[id] = true
	}

	Reorder(&c, period.Daily, []string{"d2"}, HalfOpen, now)

	after := taskIDs(c)
	if len(after) != len(before) {
		t.Fatalf("task count changed: %v", after)
	}
	for _, id := range after {
		if !before[id] {
			t.Fatalf("unknown task id %q after reorder", id)
		}
	}
}

func TestReorderAppendsUnmentionedMembersInOriginalOrder(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	c := boardFixture(now)

	// Stale drag payload: mentions one member plus a bogus id.
	Reorder(&c, period.Daily, []string{"d2", "ghost"}, HalfOpen, now)

	want := []string{"d2", "d1", "d4"}
	positions := []int{0, 2, 5}
	for i, pos := range positions {
		if c.Tasks[pos].ID != want[i] {
			t.Errorf("position %d = %q, want %q", pos, c.Tasks[pos].ID, want[i])
		}
	}
}

func TestReorderSubgroupOfOneIsNoOp(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	c := boardFixture(now)

	if changed := Reorder(&c, period.Daily, []string{"d3"}, HalfDone, now); changed {
		t.Error("done half has a single member, expected no-op")
	}
	if changed := Reorder(&c, period.Monthly, nil, HalfOpen, now); changed {
		t.Error("empty subgroup, expected no-op")
	}
}

func TestReorderIgnoresOtherHalf(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	c := boardFixture(now)

	// Attempting to move the done task through the open half changes nothing.
	Reorder(&c, period.Daily, []string{"d3", "d1", "d2", "d4"}, HalfOpen, now)
	if c.Tasks[3].ID != "d3" {
		t.Errorf("done task moved, position 3 = %q", c.Tasks[3].ID)
	}
}
