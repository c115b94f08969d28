package tracker

import (
	"testing"
	"time"

	"pxgdaily/pkg/period"
	"pxgdaily/pkg/reset"
)

func testRules(t *testing.T) reset.Rules {
	t.Helper()
	loc, err := time.LoadLocation(reset.DefaultTimezone)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return reset.Rules{Location: loc, Hour: 7, Minute: 40}
}

func TestIsDone(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		resetAt string
		want    bool
	}{
		{"no reset horizon", "", false},
		{"horizon in the future", FormatInstant(now.Add(time.Hour)), true},
		{"horizon in the past", FormatInstant(now.Add(-time.Hour)), false},
		{"horizon exactly now", FormatInstant(now), false},
		{"unparsable horizon fails safe to open", "not-a-time", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task := Task{ID: "t", Title: "Hunt", Period: period.Daily, ResetAt: tc.resetAt}
			if got := task.IsDone(now); got != tc.want {
				t.Errorf("IsDone = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestToggleOpenToDone(t *testing.T) {
	rules := testRules(t)
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, rules.Location)

	task := NewTask("Hunt", period.Daily, OriginSystem)
	task.DoingForKey = period.Daily.Key(now)

	task.Toggle(rules, now)

	if !task.IsDone(now) {
		t.Fatal("task should be done after toggle")
	}
	if task.DoneForKey != "2024-03-05" {
		t.Errorf("doneForKey = %q, want 2024-03-05", task.DoneForKey)
	}
	if task.DoingForKey != "" {
		t.Errorf("doingForKey should be cleared, got %q", task.DoingForKey)
	}
	if task.DoneAt != FormatInstant(now) {
		t.Errorf("doneAt = %q, want %q", task.DoneAt, FormatInstant(now))
	}
	want := time.Date(2024, time.March, 6, 7, 40, 0, 0, rules.Location)
	at, ok := ParseInstant(task.ResetAt)
	if !ok || !at.Equal(want) {
		t.Errorf("resetAt = %q, want %s", task.ResetAt, want)
	}
}

func TestToggleRollingWindowTask(t *testing.T) {
	rules := testRules(t)
	now := time.Date(2024, time.March, 5, 14, 22, 10, 0, rules.Location)

	task := NewTask("Clones", period.Monthly, OriginSystem)
	task.Toggle(rules, now)

	want := time.Date(2024, time.April, 4, 14, 22, 10, 0, rules.Location)
	at, ok := ParseInstant(task.ResetAt)
	if !ok || !at.Equal(want) {
		t.Errorf("resetAt = %q, want %s", task.ResetAt, want)
	}
}

func TestToggleDoneToOpenClearsEverything(t *testing.T) {
	rules := testRules(t)
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, rules.Location)

	task := NewTask("Hunt", period.Daily, OriginSystem)
	task.Toggle(rules, now)
	task.Toggle(rules, now)

	if task.IsDone(now) {
		t.Fatal("task should be open after second toggle")
	}
	if task.DoneForKey != "" || task.DoingForKey != "" || task.DoneAt != "" || task.ResetAt != "" {
		t.Errorf("completion fields not cleared: %+v", task)
	}
}

func TestArchiveForcesOpenAndRestoreKeepsIt(t *testing.T) {
	rules := testRules(t)
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, rules.Location)

	task := NewTask("Raid", period.Weekly, OriginSystem)
	task.Toggle(rules, now)
	task.DoingForKey = period.Weekly.Key(now)

	task.Archive(now)

	if !task.Archived() {
		t.Fatal("task should be archived")
	}
	if task.DoneForKey != "" || task.DoingForKey != "" || task.DoneAt != "" || task.ResetAt != "" {
		t.Errorf("archiving must clear completion fields: %+v", task)
	}

	task.Restore()
	if task.Archived() {
		t.Fatal("task should not be archived after restore")
	}
	if task.IsDone(now) {
		t.Error("restore must not resurrect completion state")
	}
}

func TestDatabaseCloneIsDeep(t *testing.T) {
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)
	db := NewDatabase("Red", now)
	db.Characters = append(db.Characters, NewCharacter("Red's Main", now))

	clone := db.Clone()
	clone.Characters[0].Tasks[0].Title = "changed"
	clone.Characters[0].Name = "changed"

	if db.Characters[0].Tasks[0].Title == "changed" {
		t.Error("clone shares task backing array with original")
	}
	if db.Characters[0].Name == "changed" {
		t.Error("clone shares character with original")
	}
}

func TestTaskLookupMissingIDsAreNil(t *testing.T) {
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)
	db := NewDatabase("Red", now)
	db.Characters = append(db.Characters, NewCharacter("Main", now))

	if c, task := db.Task("nope", "nope"); c != nil || task != nil {
		t.Error("missing character should yield nils")
	}
	if c, task := db.Task(db.Characters[0].ID, "nope"); c == nil || task != nil {
		t.Error("missing task should yield nil task with found character")
	}
}
