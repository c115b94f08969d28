// Package code shows the active profile pointer and clears it on logout.
package code

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"pxgdaily/pkg/session"
	"pxgdaily/pkg/store"
)

type Code struct {
	Persistence store.Persistence
}

func (c *Code) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("can not read code, no persistence")
	}
	active, err := session.GetActiveUser(c.Persistence)
	if err != nil {
		return err
	}
	if active == nil {
		return session.ErrNoProfile
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	_, _ = bold.Print(active.Name)
	_, _ = faint.Printf("  [%s]\n", active.SyncCode)
	return nil
}

type Logout struct {
	Persistence store.Persistence
}

func (l *Logout) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not logout, no persistence")
	}
	active, err := session.GetActiveUser(l.Persistence)
	if err != nil {
		return err
	}
	if active == nil {
		fmt.Println("No active profile.")
		return nil
	}
	if err := session.ClearActiveUser(l.Persistence); err != nil {
		return err
	}
	fmt.Printf("Logged out of %s. The profile stays stored; enter with the sync code to reopen it.\n", active.Name)
	return nil
}
