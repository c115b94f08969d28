// Package character implements character management on the active profile.
package character

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

type Add struct {
	Name        string
	Rules       reset.Rules
	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return errors.New("a character name is required")
	}

	s, err := session.Resume(a.Persistence, a.Rules)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, c := range s.DB().Characters {
		if strings.EqualFold(c.Name, name) {
			return fmt.Errorf("character %q already exists", name)
		}
	}

	if err := s.Update(func(db *tracker.Database) {
		db.Characters = append(db.Characters, tracker.NewCharacter(name, s.Now()))
	}); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Characters(s.DB(), s.Now())
	return nil
}

type Remove struct {
	Name        string
	Confirmed   bool
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

	var id string
	for _, c := range s.DB().Characters {
		if strings.EqualFold(c.Name, strings.TrimSpace(r.Name)) || c.ID == r.Name {
			id = c.ID
			break
		}
	}
	if id == "" {
		return fmt.Errorf("no character matching %q", r.Name)
	}
	if !r.Confirmed {
		return errors.New("removing a character drops all its tasks; re-run with --yes")
	}

	if err := s.Update(func(db *tracker.Database) {
		db.RemoveCharacter(id)
	}); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Characters(s.DB(), s.Now())
	return nil
}

type List struct {
	Rules       reset.Rules
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	s, err := session.Resume(l.Persistence, l.Rules)
	if err != nil {
		return err
	}
	defer s.Close()

	pp := printers.PrettyPrint{}
	pp.Header(s.DB(), s.Code())
	pp.NewLine()
	pp.Characters(s.DB(), s.Now())
	return nil
}
