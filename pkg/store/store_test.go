package store

import (
	"bytes"
	"context"
	"testing"
)

func TestNormalizePart(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  red fox ", "REDFOX"},
		{"ab-12", "AB12"},
		{"REDFOX", "REDFOX"},
		{"çãó!!", ""},
		{"a1b2", "A1B2"},
	}
	for _, tc := range tests {
		if got := NormalizePart(tc.in); got != tc.want {
			t.Errorf("NormalizePart(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestProfileKeyIsStableAcrossFormatting(t *testing.T) {
	a := ProfileKey("red fox", "ab-12")
	b := ProfileKey("REDFOX", "AB12")
	if a != b {
		t.Errorf("keys differ: %q vs %q", a, b)
	}
	if a != "db::REDFOX::AB12" {
		t.Errorf("key = %q", a)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	key := ProfileKey("Red", "AB12")
	want := []byte(`{"schemaVersion":1}`)
	if err := p.Set(key, want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := p.Get(key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("get = %s, want %s", got, want)
	}

	keys := p.Keys(context.Background(), ProfilePrefix)
	if len(keys) != 1 || keys[0] != key {
		t.Errorf("keys = %v", keys)
	}

	if err := p.Delete(key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := p.Get(key); err != ErrNotFound {
		t.Errorf("get after delete: %v, want ErrNotFound", err)
	}

	// Deleting a missing key is not an error.
	if err := p.Delete(key); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}
