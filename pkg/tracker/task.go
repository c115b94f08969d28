// Package tracker defines the profile snapshot model and the task
// lifecycle engine: completion state, period resets, origin
// classification, and subgroup reordering.
package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"pxgdaily/pkg/period"
	"pxgdaily/pkg/reset"
)

// Origin records whether a task shipped with the app or was created by the
// player. It is assigned at most once per task and never reassigned, and it
// controls what the player may do: system tasks can only be archived or
// reset, user tasks can also be renamed and deleted.
type Origin string

const (
	OriginSystem Origin = "system"
	OriginUser   Origin = "user"
)

// Task is one recurring chore on a character.
//
// DoneForKey and DoingForKey are legacy period-key markers kept for
// compatibility with older snapshots; ResetAt is the authoritative
// completion signal. All instant fields are stored as RFC 3339 strings so a
// corrupted value degrades to "open" instead of poisoning the snapshot.
type Task struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Period      period.Period `json:"period"`
	Origin      Origin        `json:"origin,omitempty"`
	DoneForKey  string        `json:"doneForKey,omitempty"`
	DoingForKey string        `json:"doingForKey,omitempty"`
	DoneAt      string        `json:"doneAt,omitempty"`
	ResetAt     string        `json:"resetAt,omitempty"`
	ArchivedAt  string        `json:"archivedAt,omitempty"`
}

// NewTask creates a task with a fresh id. A freshly created task is open.
func NewTask(title string, p period.Period, origin Origin) Task {
	return Task{
		ID:     uuid.NewString(),
		Title:  title,
		Period: p,
		Origin: origin,
	}
}

// IsDone reports whether the task counts as completed for its current
// cycle: ResetAt is set, parsable, and still in the future. An unparsable
// ResetAt fails safe to open.
func (t *Task) IsDone(now time.Time) bool {
	at, ok := ParseInstant(t.ResetAt)
	return ok && now.Before(at)
}

// Archived reports whether the task is soft-removed from normal views.
func (t *Task) Archived() bool {
	return t.ArchivedAt != ""
}

// Toggle flips the completion state at now. Marking done records the cycle
// key, the completion instant, and the computed reset horizon; marking open
// clears all four completion fields. Callers must cancel any focus cycle
// for the task before toggling.
func (t *Task) Toggle(rules reset.Rules, now time.Time) {
	if t.IsDone(now) {
		t.clearCompletion()
		return
	}
	t.DoneForKey = t.Period.Key(now)
	t.DoingForKey = ""
	t.DoneAt = FormatInstant(now)
	t.ResetAt = FormatInstant(rules.ComputeResetAt(t.Period, t.Title, now))
}

// Archive forces the task open, drops any in-progress marker, and stamps
// ArchivedAt. An archived task never carries completion state.
func (t *Task) Archive(now time.Time) {
	t.clearCompletion()
	t.ArchivedAt = FormatInstant(now)
}

// Restore clears ArchivedAt only; the task comes back open.
func (t *Task) Restore() {
	t.ArchivedAt = ""
}

// Signature returns the canonical (period, normalized title) identity used
// to recognize system-provided tasks.
func (t *Task) Signature() string {
	return signatureKey(t.Period, t.Title)
}

func (t *Task) clearCompletion() {
	t.DoneForKey = ""
	t.DoingForKey = ""
	t.DoneAt = ""
	t.ResetAt = ""
}

func signatureKey(p period.Period, title string) string {
	return fmt.Sprintf("%s::%s", p, reset.Normalize(title))
}
