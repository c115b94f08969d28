// Package enter implements the profile entry flow: open an existing
// profile by (name, sync code) or create a fresh one.
package enter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"pxgdaily/pkg/reset"
	"pxgdaily/pkg/session"
	"pxgdaily/pkg/store"
	"pxgdaily/pkg/synccode"
)

type Enter struct {
	Name        string
	Code        string
	Rules       reset.Rules
	Persistence store.Persistence
	Out         io.Writer
}

func (e *Enter) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not enter, no persistence")
	}
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return errors.New("a display name is required")
	}

	code := strings.ToUpper(strings.TrimSpace(e.Code))
	generated := false
	if code == "" {
		var err error
		code, err = synccode.Generate(synccode.Length)
		if err != nil {
			return err
		}
		generated = true
	} else if !synccode.Valid(store.NormalizePart(code)) {
		return fmt.Errorf("sync code %q is not a 4 character code", e.Code)
	}

	s, existed, err := session.Open(e.Persistence, e.Rules, name, code)
	if err != nil {
		return err
	}
	defer s.Close()

	out := e.Out
	if out == nil {
		out = os.Stdout
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	switch {
	case existed:
		_, _ = bold.Fprintf(out, "Welcome back, %s", s.DB().Profile.DisplayName)
		_, _ = faint.Fprintf(out, "  [%s]\n", code)
	case generated:
		_, _ = bold.Fprintf(out, "Created profile %s", name)
		_, _ = faint.Fprintf(out, "  [%s]\n", code)
		_, _ = fmt.Fprintln(out, "Keep your sync code; you need it to open this profile on another device.")
	default:
		// A code was supplied but nothing is stored under it yet.
		_, _ = bold.Fprintf(out, "Created profile %s", name)
		_, _ = faint.Fprintf(out, "  [%s]\n", code)
	}
	return nil
}
