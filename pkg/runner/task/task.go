// Package task implements task management: add, rename, archive, restore,
// and remove. System-provided tasks can be archived but never renamed or
// removed.
package task

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pxgdaily/pkg/period"
	"pxgdaily/pkg/printers"
	"pxgdaily/pkg/reset"
	"pxgdaily/pkg/runner/done"
	"pxgdaily/pkg/session"
	"pxgdaily/pkg/store"
	"pxgdaily/pkg/tracker"
)

// ErrSystemTask is returned when a rename or remove targets a task that
// shipped with the app.
var ErrSystemTask = errors.New("system tasks can be archived, not changed or removed")

type Add struct {
	Title       string
	Period      period.Period
	Character   string
	Rules       reset.Rules
	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	title := strings.TrimSpace(a.Title)
	if title == "" {
		return errors.New("a task title is required")
	}
	if !a.Period.Valid() {
		return fmt.Errorf("unknown period %q", a.Period)
	}

	s, err := session.Resume(a.Persistence, a.Rules)
	if err != nil {
		return err
	}
	defer s.Close()

	characterID, err := findCharacter(s.DB(), a.Character)
	if err != nil {
		return err
	}

	if err := s.Update(func(db *tracker.Database) {
		c := db.Character(characterID)
		if c == nil {
			return
		}
		c.Tasks = append(c.Tasks, tracker.NewTask(title, a.Period, tracker.OriginUser))
	}); err != nil {
		return err
	}
	return show(s, characterID)
}

type Rename struct {
	Ref         string
	Title       string
	Character   string
	Rules       reset.Rules
	Persistence store.Persistence
}

func (r *Rename) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not rename, no persistence")
	}
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("a new title is required")
	}

	s, err := session.Resume(r.Persistence, r.Rules)
	if err != nil {
		return err
	}
	defer s.Close()

	characterID, taskID, err := done.Find(s.DB(), r.Character, r.Ref)
	if err != nil {
		return err
	}
	if _, task := s.DB().Task(characterID, taskID); task != nil && task.Origin == tracker.OriginSystem {
		return ErrSystemTask
	}

	if err := s.Update(func(db *tracker.Database) {
		if _, task := db.Task(characterID, taskID); task != nil {
			task.Title = title
		}
	}); err != nil {
		return err
	}
	return show(s, characterID)
}

type Archive struct {
	Ref         string
	Character   string
	Restore     bool
	Rules       reset.Rules
	Persistence store.Persistence
}

func (a *Archive) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("can not archive, no persistence")
	}
	s, err := session.Resume(a.Persistence, a.Rules)
	if err != nil {
		return err
	}
	defer s.Close()

	characterID, taskID, err := done.Find(s.DB(), a.Character, a.Ref)
	if err != nil {
		return err
	}

	if err := s.Update(func(db *tracker.Database) {
		_, task := db.Task(characterID, taskID)
		if task == nil {
			return
		}
		if a.Restore {
			task.Restore()
		} else {
			task.Archive(s.Now())
		}
	}); err != nil {
		return err
	}
	return show(s, characterID)
}

type Remove struct {
	Ref         string
	Character   string
	Rules       reset.Rules
	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	s, err := session.Resume(r.Persistence, r.Rules)
	if err != nil {
		return err
	}
	defer s.Close()

	characterID, taskID, err := done.Find(s.DB(), r.Character, r.Ref)
	if err != nil {
		return err
	}
	if _, task := s.DB().Task(characterID, taskID); task != nil && task.Origin == tracker.OriginSystem {
		return ErrSystemTask
	}

	if err := s.Update(func(db *tracker.Database) {
		if c := db.Character(characterID); c != nil {
			c.RemoveTask(taskID)
		}
	}); err != nil {
		return err
	}
	return show(s, characterID)
}

// findCharacter resolves a character by name or id. With a single
// character on the profile, naming it is optional.
func findCharacter(db *tracker.Database, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		if len(db.Characters) == 1 {
			return db.Characters[0].ID, nil
		}
		return "", errors.New("pick a character with --character")
	}
	for i := range db.Characters {
		c := &db.Characters[i]
		if strings.EqualFold(c.Name, query) || c.ID == query {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("no character matching %q", query)
}

func show(s *session.Session, characterID string) error {
	if c := s.DB().Character(characterID); c != nil {
		pp := printers.PrettyPrint{ShowArchived: true}
		pp.Character(c, s.Now())
	}
	return nil
}
