// Package export frames profile snapshots for file transfer between
// devices and validates inbound payloads.
package export

import (
	"encoding/json"
	"errors"
	"fmt"

	"pxgdaily/pkg/tracker"
)

// Version is the current export document version.
const Version = 1

// Document wraps a snapshot together with the sync code it was exported
// under, so an import can rebuild the full profile address.
type Document struct {
	ExportVersion int               `json:"exportVersion"`
	SyncCode      string            `json:"syncCode,omitempty"`
	DB            *tracker.Database `json:"db"`
}

// Encode renders an export document for the snapshot.
func Encode(db *tracker.Database, syncCode string) ([]byte, error) {
	if db == nil {
		return nil, errors.New("export: no snapshot to export")
	}
	doc := Document{ExportVersion: Version, SyncCode: syncCode, DB: db}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal: %w", err)
	}
	return data, nil
}

// Decode parses an import payload. Both the wrapped document form and a
// bare snapshot are accepted for back compatibility; the embedded sync
// code, when present, is returned alongside. Malformed payloads surface a
// descriptive error and never partially apply.
func Decode(data []byte) (*tracker.Database, string, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil && doc.DB != nil {
		if doc.ExportVersion != Version {
			return nil, "", fmt.Errorf("export: unsupported export version %d", doc.ExportVersion)
		}
		if err := Validate(doc.DB); err != nil {
			return nil, "", err
		}
		return doc.DB, doc.SyncCode, nil
	}

	var db tracker.Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, "", fmt.Errorf("export: parse payload: %w", err)
	}
	if err := Validate(&db); err != nil {
		return nil, "", err
	}
	return &db, "", nil
}

// Validate rejects snapshots that do not carry the minimum shape: schema
// version 1, a profile block, and a characters array.
func Validate(db *tracker.Database) error {
	if db == nil {
		return errors.New("export: payload has no snapshot")
	}
	if db.SchemaVersion != tracker.SchemaVersion {
		return fmt.Errorf("export: unsupported schema version %d", db.SchemaVersion)
	}
	if db.Profile.DisplayName == "" && db.Profile.CreatedAt.IsZero() {
		return errors.New("export: snapshot has no profile")
	}
	if db.Characters == nil {
		return errors.New("export: snapshot has no characters array")
	}
	return nil
}
