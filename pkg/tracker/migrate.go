package tracker

import (
	"time"

	"pxgdaily/pkg/reset"
)

// MigrateOrigins assigns provenance to every task that lacks one: tasks
// whose (period, normalized title) matches the canonical signature table
// become system tasks, everything else is a user task. A task with an
// origin is never revisited, even if its title is later edited to match or
// diverge from a signature. Returns whether anything changed, so running it
// twice in a row is a no-op the second time.
func MigrateOrigins(db *Database) bool {
	set := signatureSet()
	changed := false
	for ci := range db.Characters {
		tasks := db.Characters[ci].Tasks
		for ti := range tasks {
			t := &tasks[ti]
			if t.Origin != "" {
				continue
			}
			if _, ok := set[t.Signature()]; ok {
				t.Origin = OriginSystem
			} else {
				t.Origin = OriginUser
			}
			changed = true
		}
	}
	return changed
}

// MigrateLegacyMarkers normalizes snapshots that predate the reset-horizon
// model, where completion was a bare doneForKey string compared against the
// current period key. A doneForKey matching the current cycle is converted
// into a real completion with a computed reset horizon; stale done and
// doing markers are cleared. Tasks that already carry a ResetAt are left
// alone. Returns whether anything changed.
func MigrateLegacyMarkers(db *Database, rules reset.Rules, now time.Time) bool {
	changed := false
	for ci := range db.Characters {
		tasks := db.Characters[ci].Tasks
		for ti := range tasks {
			t := &tasks[ti]
			if t.ResetAt != "" {
				continue
			}
			if t.DoneForKey != "" {
				if t.DoneForKey == t.Period.Key(now) && !t.Archived() {
					t.DoneAt = FormatInstant(now)
					t.ResetAt = FormatInstant(rules.ComputeResetAt(t.Period, t.Title, now))
				} else {
					t.DoneForKey = ""
					t.DoneAt = ""
				}
				changed = true
			}
			if t.DoingForKey != "" && t.DoingForKey != t.Period.Key(now) {
				t.DoingForKey = ""
				changed = true
			}
		}
	}
	return changed
}
