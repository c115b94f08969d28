// Package done toggles a task's completion for its current cycle.
package done

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

type Done struct {
	// Ref is a task id or a task title.
	Ref         string
	Character   string
	Rules       reset.Rules
	Persistence store.Persistence
}

func (d *Done) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("can not toggle, no persistence")
	}
	s, err := session.Resume(d.Persistence, d.Rules)
	if err != nil {
		return err
	}
	defer s.Close()

	characterID, taskID, err := Find(s.DB(), d.Character, d.Ref)
	if err != nil {
		return err
	}

	if err := s.Update(func(db *tracker.Database) {
		if _, task := db.Task(characterID, taskID); task != nil {
			task.Toggle(s.Rules(), s.Now())
		}
	}); err != nil {
		return err
	}

	if c := s.DB().Character(characterID); c != nil {
		pp := printers.PrettyPrint{}
		pp.Character(c, s.Now())
	}
	return nil
}

// Find resolves a task reference to (characterID, taskID). An exact id
// match wins; otherwise the title is matched case-insensitively, scoped to
// the named character when one is given. Archived tasks are considered only
// when no active task carries the title, so restore can resolve them
// without making everyday toggles ambiguous. Ambiguous titles are an error.
func Find(db *tracker.Database, character, ref string) (string, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "", errors.New("a task id or title is required")
	}

	var foundCharacter, foundTask string
	matches := 0
	var archivedCharacter, archivedTask string
	archivedMatches := 0
	for i := range db.Characters {
		c := &db.Characters[i]
		if character != "" && !strings.EqualFold(character, c.Name) && character != c.ID {
			continue
		}
		for j := range c.Tasks {
			task := &c.Tasks[j]
			if task.ID == ref {
				return c.ID, task.ID, nil
			}
			if !strings.EqualFold(task.Title, ref) {
				continue
			}
			if task.Archived() {
				archivedCharacter, archivedTask = c.ID, task.ID
				archivedMatches++
			} else {
				foundCharacter, foundTask = c.ID, task.ID
				matches++
			}
		}
	}

	if matches == 0 && archivedMatches > 0 {
		foundCharacter, foundTask, matches = archivedCharacter, archivedTask, archivedMatches
	}

	switch matches {
	case 0:
		return "", "", fmt.Errorf("no task matching %q", ref)
	case 1:
		return foundCharacter, foundTask, nil
	default:
		return "", "", fmt.Errorf("%d tasks match %q, pick a character with --character or use the task id", matches, ref)
	}
}
