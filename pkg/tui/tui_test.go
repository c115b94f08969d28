package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pxgdaily/pkg/focus"
	"pxgdaily/pkg/period"
	"pxgdaily/pkg/reset"
	"pxgdaily/pkg/session"
	"pxgdaily/pkg/store"
	"pxgdaily/pkg/tracker"
)

type memoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string][]byte)}
}

func (m *memoryStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.values[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *memoryStore) Set(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), data...)
	return nil
}

func (m *memoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryStore) Keys(_ context.Context, prefix string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		if prefix == "" || strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

func (m *memoryStore) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func testApp(t *testing.T) (*App, *session.Session) {
	t.Helper()
	loc, err := time.LoadLocation(reset.DefaultTimezone)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	rules := reset.Rules{Location: loc, Hour: 7, Minute: 40}

	p := newMemoryStore()
	s, _, err := session.Open(p, rules, "Red", "AB12")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Update(func(db *tracker.Database) {
		db.Characters = append(db.Characters, tracker.NewCharacter("Main", s.Now()))
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return New(s, focus.New(s, time.Hour), p), s
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func taskByTitle(t *testing.T, s *session.Session, title string) *tracker.Task {
	t.Helper()
	c := &s.DB().Characters[0]
	for i := range c.Tasks {
		if c.Tasks[i].Title == title {
			return &c.Tasks[i]
		}
	}
	t.Fatalf("no task titled %q", title)
	return nil
}

func TestRowsGroupByPeriodOpenBeforeDone(t *testing.T) {
	app, s := testApp(t)

	if err := s.Update(func(db *tracker.Database) {
		c := &db.Characters[0]
		for i := range c.Tasks {
			if c.Tasks[i].Title == "Hunt" {
				c.Tasks[i].Toggle(s.Rules(), s.Now())
			}
		}
	}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	app.rebuildRows()

	c := &s.DB().Characters[0]
	now := s.Now()
	seenDonePerPeriod := map[period.Period]bool{}
	lastPeriodIdx := 0
	order := map[period.Period]int{period.Daily: 0, period.Weekly: 1, period.Monthly: 2}
	for _, r := range app.rows {
		idx := order[r.period]
		if idx < lastPeriodIdx {
			t.Fatalf("periods out of order: %+v", app.rows)
		}
		if idx > lastPeriodIdx {
			lastPeriodIdx = idx
			seenDonePerPeriod = map[period.Period]bool{}
		}
		task := c.Task(r.taskID)
		if task.IsDone(now) {
			seenDonePerPeriod[r.period] = true
		} else if seenDonePerPeriod[r.period] {
			t.Fatalf("open task %q after a done task in %s", task.Title, r.period)
		}
	}
}

func TestEnterTogglesSelectedTask(t *testing.T) {
	app, s := testApp(t)

	first := app.rows[0]
	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, task := s.DB().Task(first.characterID, first.taskID)
	if !task.IsDone(s.Now()) {
		t.Error("enter should toggle the selected task done")
	}
}

func TestMoveSwapsWithinSubgroup(t *testing.T) {
	app, s := testApp(t)

	var daily []string
	for _, task := range s.DB().Characters[0].Tasks {
		if task.Period == period.Daily {
			daily = append(daily, task.ID)
		}
	}
	if len(daily) < 2 {
		t.Skip("needs at least two daily tasks")
	}

	_, _ = app.Update(keyRune('J'))

	var after []string
	for _, task := range s.DB().Characters[0].Tasks {
		if task.Period == period.Daily {
			after = append(after, task.ID)
		}
	}
	if after[0] != daily[1] || after[1] != daily[0] {
		t.Errorf("J should swap the first two daily tasks: before %v after %v", daily, after)
	}
	if app.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (follows the moved task)", app.cursor)
	}
}

func TestDeleteSystemTaskIsRefused(t *testing.T) {
	app, s := testApp(t)

	before := len(s.DB().Characters[0].Tasks)
	_, _ = app.Update(keyRune('d'))
	if app.mode == modeConfirmDelete {
		t.Fatal("system task delete must not reach confirmation")
	}
	if app.message == "" {
		t.Error("expected a message explaining the refusal")
	}
	if got := len(s.DB().Characters[0].Tasks); got != before {
		t.Errorf("task count changed: %d -> %d", before, got)
	}
}

func TestDeleteUserTaskNeedsConfirmation(t *testing.T) {
	app, s := testApp(t)

	if err := s.Update(func(db *tracker.Database) {
		c := &db.Characters[0]
		c.Tasks = append(c.Tasks, tracker.NewTask("My Grind", period.Daily, tracker.OriginUser))
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	app.rebuildRows()

	grind := taskByTitle(t, s, "My Grind")
	for i, r := range app.rows {
		if r.taskID == grind.ID {
			app.cursor = i
			break
		}
	}

	before := len(s.DB().Characters[0].Tasks)
	_, _ = app.Update(keyRune('d'))
	if app.mode != modeConfirmDelete {
		t.Fatal("user task delete should ask for confirmation")
	}
	_, _ = app.Update(keyRune('n'))
	if got := len(s.DB().Characters[0].Tasks); got != before {
		t.Fatalf("answering n must not delete: %d -> %d", before, got)
	}

	for i, r := range app.rows {
		if r.taskID == grind.ID {
			app.cursor = i
			break
		}
	}
	_, _ = app.Update(keyRune('d'))
	_, _ = app.Update(keyRune('y'))
	if got := len(s.DB().Characters[0].Tasks); got != before-1 {
		t.Errorf("answering y should delete: %d -> %d", before, got)
	}
}

func TestPromptResolutionNo(t *testing.T) {
	app, s := testApp(t)

	first := app.rows[0]
	if err := app.fc.Start(first.characterID, first.taskID); err != nil {
		t.Fatalf("focus start: %v", err)
	}
	_, _ = app.Update(promptMsg(focus.Prompt{
		CharacterID: first.characterID,
		TaskID:      first.taskID,
		Title:       "Hunt",
	}))
	if app.prompt == nil {
		t.Fatal("prompt should be pending")
	}

	_, _ = app.Update(keyRune('n'))
	if app.prompt != nil {
		t.Error("prompt should be dismissed")
	}
	_, task := s.DB().Task(first.characterID, first.taskID)
	if task.IsDone(s.Now()) {
		t.Error("answering n must leave the task open")
	}
}
