package export

import (
	"strings"
	"testing"
	"time"

	"pxgdaily/pkg/tracker"
)

func snapshot(t *testing.T) *tracker.Database {
	t.Helper()
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)
	db := tracker.NewDatabase("Red", now)
	db.Characters = append(db.Characters, tracker.NewCharacter("Main", now))
	return db
}

func TestEncodeDecodeDocument(t *testing.T) {
	db := snapshot(t)

	data, err := Encode(db, "AB12")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, code, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if code != "AB12" {
		t.Errorf("sync code = %q, want AB12", code)
	}
	if got.Profile.DisplayName != "Red" {
		t.Errorf("display name = %q", got.Profile.DisplayName)
	}
	if len(got.Characters) != 1 || len(got.Characters[0].Tasks) == 0 {
		t.Errorf("characters lost in round trip: %+v", got.Characters)
	}
}

func TestDecodeBareSnapshot(t *testing.T) {
	data := []byte(`{
	  "schemaVersion": 1,
	  "profile": {"displayName": "Red", "createdAt": "2024-03-05T08:00:00Z", "lastOpenAt": "2024-03-05T08:00:00Z"},
	  "meta": {"updatedAt": "2024-03-05T08:00:00Z", "revision": 3},
	  "characters": []
	}`)

	db, code, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if code != "" {
		t.Errorf("bare snapshot should have no sync code, got %q", code)
	}
	if db.Meta.Revision != 3 {
		t.Errorf("revision = %d, want 3", db.Meta.Revision)
	}
}

func TestDecodeRejectsMalformedPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"not json", `{{{`, "parse payload"},
		{"wrong schema", `{"schemaVersion": 2, "profile": {"displayName": "x"}, "characters": []}`, "schema version"},
		{"missing profile", `{"schemaVersion": 1, "characters": []}`, "no profile"},
		{"missing characters", `{"schemaVersion": 1, "profile": {"displayName": "x"}}`, "characters"},
		{"wrong export version", `{"exportVersion": 9, "db": {"schemaVersion": 1, "profile": {"displayName": "x"}, "characters": []}}`, "export version"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Decode([]byte(tc.payload))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
