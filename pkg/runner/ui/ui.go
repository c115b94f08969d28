// Package ui launches the interactive board.
package ui

import (
	"context"
	"errors"
	"time"

	"pxgdaily/pkg/focus"
	"pxgdaily/pkg/reset"
	"pxgdaily/pkg/session"
	"pxgdaily/pkg/store"
	"pxgdaily/pkg/tui"
)

type UI struct {
	Rules       reset.Rules
	Focus       time.Duration
	Persistence store.Persistence
}

func (d *UI) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("can not open the board, no persistence")
	}

	s, err := session.Resume(d.Persistence, d.Rules)
	if err != nil {
		return err
	}
	defer s.Close()

	fc := focus.New(s, d.Focus)
	return tui.Run(ctx, s, fc, d.Persistence)
}
