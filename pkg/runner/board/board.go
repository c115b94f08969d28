// Package board renders the active profile's task board.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pxgdaily/pkg/printers"
	"pxgdaily/pkg/reset"
	"pxgdaily/pkg/session"
	"pxgdaily/pkg/store"
	"pxgdaily/pkg/tracker"
)

type Board struct {
	ShowID       bool
	ShowArchived bool
	Summary      bool
	Character    string
	Rules        reset.Rules
	Persistence  store.Persistence
}

func (b *Board) Do(ctx context.Context) error {
	if b.Persistence == nil {
		return errors.New("can not render board, no persistence")
	}
	s, err := session.Resume(b.Persistence, b.Rules)
	if err != nil {
		return err
	}
	defer s.Close()

	db := s.DB()
	now := s.Now()
	pp := printers.PrettyPrint{ShowID: b.ShowID, ShowArchived: b.ShowArchived}

	pp.Header(db, s.Code())
	pp.NewLine()

	if b.Summary {
		pp.Characters(db, now)
		return nil
	}

	if len(db.Characters) == 0 {
		fmt.Println("No characters yet. Add one with: pxgdaily character add <name>")
		return nil
	}

	for i := range db.Characters {
		c := &db.Characters[i]
		if b.Character != "" && !nameMatches(c, b.Character) {
			continue
		}
		pp.Character(c, now)
	}
	return nil
}

func nameMatches(c *tracker.Character, query string) bool {
	return strings.EqualFold(strings.TrimSpace(query), c.Name) || query == c.ID
}
