package tracker

import (
	"pxgdaily/pkg/period"
)

// Signature is a canonical (period, normalized title) pair identifying a
// task as system-provided. The table below is the sole ground truth for
// origin classification; order matters because new characters are seeded
// from it top to bottom.
type Signature struct {
	Period period.Period
	Title  string
}

var defaultSignatures = []Signature{
	{period.Daily, "Hunt"},
	{period.Daily, "Fishing"},
	{period.Daily, "Daily Quest"},
	{period.Weekly, "Raid"},
	{period.Weekly, "Tournament"},
	{period.Monthly, "Clones"},
	{period.Monthly, "Season Chest"},
}

// Signatures returns the canonical signature table in seed order.
func Signatures() []Signature {
	return append([]Signature(nil), defaultSignatures...)
}

// DefaultTasks builds the system task set a new character starts with.
func DefaultTasks() []Task {
	tasks := make([]Task, 0, len(defaultSignatures))
	for _, sig := range defaultSignatures {
		tasks = append(tasks, NewTask(sig.Title, sig.Period, OriginSystem))
	}
	return tasks
}

func signatureSet() map[string]struct{} {
	set := make(map[string]struct{}, len(defaultSignatures))
	for _, sig := range defaultSignatures {
		set[signatureKey(sig.Period, sig.Title)] = struct{}{}
	}
	return set
}
