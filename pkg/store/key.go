package store

import "strings"

const (
	keySeparator = "::"

	// profileSegment prefixes every persisted snapshot key.
	profileSegment = "db"

	// ActiveKey holds the pointer to the profile the player last entered.
	ActiveKey = "active"
)

// ProfilePrefix is the key prefix shared by all persisted snapshots.
const ProfilePrefix = profileSegment + keySeparator

// NormalizePart canonicalizes one half of a profile address: trim,
// uppercase, and strip everything that is not A-Z or 0-9. Both the display
// name and the sync code go through this, so "red fox" + "ab-12" and
// "REDFOX" + "AB12" land on the same key.
func NormalizePart(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ProfileKey derives the persistence key for a (name, sync code) pair.
func ProfileKey(name, code string) string {
	return ProfilePrefix + NormalizePart(name) + keySeparator + NormalizePart(code)
}
