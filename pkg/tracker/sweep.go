package tracker

import "time"

// ApplyResets expires stale completions: every task whose ResetAt is set
// but unparsable or no longer in the future reverts to open, dropping all
// four completion fields. The sweep is idempotent; it runs on every
// snapshot change and on a low-frequency timer so long-lived sessions
// expire completions without user action. Returns whether anything changed.
func ApplyResets(db *Database, now time.Time) bool {
	changed := false
	for ci := range db.Characters {
		tasks := db.Characters[ci].Tasks
		for ti := range tasks {
			t := &tasks[ti]
			if t.ResetAt == "" {
				continue
			}
			at, ok := ParseInstant(t.ResetAt)
			if !ok || !now.Before(at) {
				t.clearCompletion()
				changed = true
			}
		}
	}
	return changed
}
