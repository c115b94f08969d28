package tracker

import (
	"encoding/json"
	"time"
)

// ParseInstant parses an RFC 3339 instant stored in a snapshot field. The
// second return reports whether the value was present and parsable; callers
// treat failures as the safest open/idle interpretation, never as fatal.
func ParseInstant(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatInstant renders an instant the way snapshots persist it.
func FormatInstant(t time.Time) string {
	return t.Format(time.RFC3339)
}

// Timestamp is a time.Time that marshals as an RFC 3339 string and tolerates
// empty or malformed values on the way in, decoding them as the zero time.
type Timestamp struct {
	time.Time
}

// Stamp wraps an instant in a Timestamp.
func Stamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, ok := ParseInstant(raw)
	if !ok {
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
