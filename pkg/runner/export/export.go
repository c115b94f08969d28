// Package export writes the active profile to a portable JSON document.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pxgdaily/pkg/export"
	"pxgdaily/pkg/reset"
	"pxgdaily/pkg/session"
	"pxgdaily/pkg/store"
)

type Export struct {
	// Path is the destination file; empty writes to stdout.
	Path        string
	Rules       reset.Rules
	Persistence store.Persistence
}

func (e *Export) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not export, no persistence")
	}
	s, err := session.Resume(e.Persistence, e.Rules)
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := export.Encode(s.DB(), s.Code())
	if err != nil {
		return err
	}

	if e.Path == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(e.Path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", e.Path, err)
	}
	fmt.Printf("Exported %s to %s\n", s.Name(), e.Path)
	return nil
}
