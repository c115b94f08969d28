package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"pxgdaily/pkg/store"
)

// ActiveUser is the pointer to the profile the player last entered. It only
// records the address; the snapshot itself lives under the profile key.
type ActiveUser struct {
	Name     string `json:"name"`
	SyncCode string `json:"syncCode"`
}

// SetActiveUser records the (name, sync code) pair as the active profile.
func SetActiveUser(p store.Persistence, name, code string) error {
	data, err := json.Marshal(ActiveUser{Name: name, SyncCode: code})
	if err != nil {
		return fmt.Errorf("session: marshal active user: %w", err)
	}
	return p.Set(store.ActiveKey, data)
}

// GetActiveUser returns the active profile pointer, or nil when none is
// recorded. A corrupted pointer is treated as absent.
func GetActiveUser(p store.Persistence) (*ActiveUser, error) {
	data, err := p.Get(store.ActiveKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var active ActiveUser
	if err := json.Unmarshal(data, &active); err != nil {
		return nil, nil
	}
	if active.Name == "" || active.SyncCode == "" {
		return nil, nil
	}
	return &active, nil
}

// ClearActiveUser removes the active profile pointer.
func ClearActiveUser(p store.Persistence) error {
	return p.Delete(store.ActiveKey)
}
