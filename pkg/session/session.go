// Package session owns the single authoritative snapshot of an open
// profile. All mutations flow through Update, which applies a mutator to a
// deep copy, runs the origin and reset migrations, stamps revision and
// updatedAt, persists the result, and swaps the reference. Readers always
// observe either the pre- or post-mutation snapshot, never a partial one.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"pxgdaily/pkg/reset"
	"pxgdaily/pkg/store"
	"pxgdaily/pkg/tracker"
)

// ErrNoProfile is returned when an operation needs an open profile and none
// is loaded.
var ErrNoProfile = errors.New("session: no active profile")

// Session binds one loaded profile snapshot to its persistence key.
type Session struct {
	mu    sync.Mutex
	p     store.Persistence
	rules reset.Rules

	name string
	code string
	key  string
	db   *tracker.Database

	cron     *cron.Cron
	onChange func(*tracker.Database)

	// now is swappable so tests drive the clock explicitly.
	now func() time.Time
}

// Open loads the profile stored under (name, code), or creates a fresh
// snapshot at revision 0 when none exists. Opening an existing profile
// refreshes lastOpenAt and bumps the revision. The active-user pointer is
// updated either way. The returned bool reports whether the profile already
// existed.
func Open(p store.Persistence, rules reset.Rules, name, code string) (*Session, bool, error) {
	s := &Session{
		p:     p,
		rules: rules,
		name:  name,
		code:  code,
		key:   store.ProfileKey(name, code),
		now:   rules.Now,
	}

	existing, err := s.loadSnapshot()
	if err != nil {
		return nil, false, err
	}

	now := s.now()
	if existing != nil {
		next := existing.Clone()
		next.Profile.DisplayName = name
		next.Profile.LastOpenAt = tracker.Stamp(now)
		tracker.MigrateOrigins(next)
		tracker.MigrateLegacyMarkers(next, rules, now)
		tracker.ApplyResets(next, now)
		next.Meta.Revision++
		next.Meta.UpdatedAt = tracker.Stamp(now)
		if err := s.persist(next); err != nil {
			return nil, false, err
		}
		s.db = next
	} else {
		fresh := tracker.NewDatabase(name, now)
		if err := s.persist(fresh); err != nil {
			return nil, false, err
		}
		s.db = fresh
	}

	if err := SetActiveUser(p, name, code); err != nil {
		return nil, false, err
	}
	return s, existing != nil, nil
}

// Resume reopens the profile recorded by the active-user pointer. It
// returns ErrNoProfile when no pointer or snapshot exists, so callers can
// route the player back to the entry flow.
func Resume(p store.Persistence, rules reset.Rules) (*Session, error) {
	active, err := GetActiveUser(p)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, ErrNoProfile
	}
	if _, err := p.Get(store.ProfileKey(active.Name, active.SyncCode)); errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoProfile
	} else if err != nil {
		return nil, err
	}
	s, _, err := Open(p, rules, active.Name, active.SyncCode)
	return s, err
}

// Name returns the display name the profile was opened with.
func (s *Session) Name() string { return s.name }

// Code returns the sync code the profile was opened with.
func (s *Session) Code() string { return s.code }

// Rules returns the reset rules the session operates under.
func (s *Session) Rules() reset.Rules { return s.rules }

// Now returns the current instant in the session's reset timezone.
func (s *Session) Now() time.Time { return s.now() }

// DB returns the current snapshot. Callers must treat it as immutable.
func (s *Session) DB() *tracker.Database {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db
}

// Update applies the mutator to a deep copy of the current snapshot, runs
// the origin migration and the reset sweep over the result, stamps a fresh
// revision and updatedAt, persists it, and swaps the reference. The update
// either fully applies or not at all; a persistence failure leaves the
// previous snapshot in place.
func (s *Session) Update(mutate func(db *tracker.Database)) error {
	s.mu.Lock()
	if s.db == nil {
		s.mu.Unlock()
		return ErrNoProfile
	}

	now := s.now()
	next := s.db.Clone()
	if mutate != nil {
		mutate(next)
	}
	tracker.MigrateOrigins(next)
	tracker.ApplyResets(next, now)
	next.Meta.Revision = s.db.Meta.Revision + 1
	next.Meta.UpdatedAt = tracker.Stamp(now)

	if err := s.persist(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.db = next
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify(next)
	}
	return nil
}

// Sweep expires stale completions. It only produces a new revision when a
// completion actually expired; otherwise the snapshot is untouched.
func (s *Session) Sweep() error {
	s.mu.Lock()
	db := s.db
	now := s.now()
	s.mu.Unlock()
	if db == nil {
		return ErrNoProfile
	}

	probe := db.Clone()
	if !tracker.ApplyResets(probe, now) {
		return nil
	}
	return s.Update(nil)
}

// Adopt replaces the snapshot wholesale, persisting it under the session
// key without bumping the revision. This is hydration (import, external
// change), not mutation.
func (s *Session) Adopt(db *tracker.Database) error {
	if db == nil {
		return errors.New("session: nothing to adopt")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := db.Clone()
	now := s.now()
	tracker.MigrateOrigins(next)
	tracker.MigrateLegacyMarkers(next, s.rules, now)
	tracker.ApplyResets(next, now)
	if err := s.persist(next); err != nil {
		return err
	}
	s.db = next
	return nil
}

// Reload re-reads the snapshot from persistence without bumping the
// revision, e.g. after a watch event from another process.
func (s *Session) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.loadSnapshot()
	if err != nil {
		return err
	}
	if db == nil {
		return ErrNoProfile
	}
	s.db = db
	return nil
}

// OnChange registers a callback invoked with each new snapshot produced by
// Update. Used by the UI to refresh; the callback must not call back into
// the session synchronously with more updates.
func (s *Session) OnChange(fn func(*tracker.Database)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// StartSweeper begins the once-per-minute background sweep so long-lived
// sessions expire completions without user interaction.
func (s *Session) StartSweeper() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return nil
	}
	loc := s.rules.Location
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc("@every 1m", func() {
		if err := s.Sweep(); err != nil {
			// A vanished profile just stops producing sweeps.
			return
		}
	}); err != nil {
		return fmt.Errorf("session: schedule sweep: %w", err)
	}
	c.Start()
	s.cron = c
	return nil
}

// Close stops the background sweeper. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c != nil {
		ctx := c.Stop()
		<-ctx.Done()
	}
}

// Logout clears the active-user pointer. The snapshot itself stays stored.
func (s *Session) Logout() error {
	return ClearActiveUser(s.p)
}

// Delete removes the persisted snapshot and the active pointer. The session
// is unusable afterwards.
func (s *Session) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.p.Delete(s.key); err != nil {
		return err
	}
	s.db = nil
	return ClearActiveUser(s.p)
}

func (s *Session) loadSnapshot() (*tracker.Database, error) {
	data, err := s.p.Get(s.key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var db tracker.Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("session: stored snapshot for %s is malformed: %w", s.key, err)
	}
	return &db, nil
}

func (s *Session) persist(db *tracker.Database) error {
	data, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("session: marshal snapshot: %w", err)
	}
	return s.p.Set(s.key, data)
}
