// Package importer hydrates a profile from an exported JSON document.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"pxgdaily/pkg/export"
	"pxgdaily/pkg/reset"
	"pxgdaily/pkg/session"
	"pxgdaily/pkg/store"
	"pxgdaily/pkg/synccode"
)

type Import struct {
	Path string
	// Code overrides the sync code embedded in the document.
	Code        string
	Rules       reset.Rules
	Persistence store.Persistence
}

func (i *Import) Do(ctx context.Context) error {
	if i.Persistence == nil {
		return errors.New("can not import, no persistence")
	}
	if i.Path == "" {
		return errors.New("a file to import is required")
	}

	data, err := os.ReadFile(i.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", i.Path, err)
	}
	db, embedded, err := export.Decode(data)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(db.Profile.DisplayName)
	if name == "" {
		return errors.New("imported profile has no display name")
	}

	code := strings.TrimSpace(i.Code)
	if code == "" {
		code = embedded
	}
	if code == "" {
		if code, err = synccode.Generate(synccode.Length); err != nil {
			return err
		}
	}

	s, _, err := session.Open(i.Persistence, i.Rules, name, code)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Adopt(db); err != nil {
		return err
	}

	fmt.Printf("Imported %s [%s]: %d characters at revision %d\n",
		name, code, len(s.DB().Characters), s.DB().Meta.Revision)
	return nil
}
