package tracker

import (
	"time"

	"pxgdaily/pkg/period"
)

// Half selects which side of a period's board a reorder targets.
type Half string

const (
	HalfOpen Half = "open"
	HalfDone Half = "done"
)

// Reorder splices a player-reordered subset of tasks back into the
// character's full task sequence.
//
// The subgroup is every task matching the period, not archived, and on the
// requested open/done half, recorded with its original position. The new
// subgroup order follows orderedIDs; subgroup members missing from
// orderedIDs keep their original relative order at the end, which guards
// against stale drag payloads. The reordered subgroup is written back into
// the recorded positions index-for-index, so tasks of other periods,
// archived tasks, and the complementary half keep their exact places.
// Subgroups of size 0 or 1 are a no-op. Returns whether anything changed.
func Reorder(c *Character, p period.Period, orderedIDs []string, half Half, now time.Time) bool {
	if c == nil {
		return false
	}

	positions := make([]int, 0, len(c.Tasks))
	group := make([]Task, 0, len(c.Tasks))
	for i := range c.Tasks {
		t := &c.Tasks[i]
		if t.Period != p || t.Archived() {
			continue
		}
		done := t.IsDone(now)
		if (half == HalfDone) != done {
			continue
		}
		positions = append(positions, i)
		group = append(group, *t)
	}

	if len(group) <= 1 {
		return false
	}

	byID := make(map[string]Task, len(group))
	for _, t := range group {
		byID[t.ID] = t
	}

	reordered := make([]Task, 0, len(group))
	seen := make(map[string]bool, len(group))
	for _, id := range orderedIDs {
		if t, ok := byID[id]; ok && !seen[id] {
			reordered = append(reordered, t)
			seen[id] = true
		}
	}
	for _, t := range group {
		if !seen[t.ID] {
			reordered = append(reordered, t)
		}
	}

	changed := false
	for k, pos := range positions {
		if c.Tasks[pos].ID != reordered[k].ID {
			changed = true
		}
		c.Tasks[pos] = reordered[k]
	}
	return changed
}
