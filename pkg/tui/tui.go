// Package tui is the interactive board: character tabs, per-period task
// sections, live reset and focus countdowns, the focus prompt, and
// keyboard reordering.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pxgdaily/pkg/focus"
	"pxgdaily/pkg/glyph"
	"pxgdaily/pkg/period"
	"pxgdaily/pkg/session"
	"pxgdaily/pkg/store"
	"pxgdaily/pkg/timeutil"
	"pxgdaily/pkg/tracker"
)

var (
	accentColor = lipgloss.Color("205")
	mutedColor  = lipgloss.Color("241")
	doneColor   = lipgloss.Color("2")
	focusColor  = lipgloss.Color("6")
	alertColor  = lipgloss.Color("3")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Underline(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(mutedColor)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("237"))

	doneStyle  = lipgloss.NewStyle().Foreground(doneColor)
	focusStyle = lipgloss.NewStyle().Foreground(focusColor)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
	alertStyle = lipgloss.NewStyle().Foreground(alertColor).Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)

type mode int

const (
	modeBoard mode = iota
	modeAddTask
	modeAddCharacter
	modeConfirmDelete
)

type row struct {
	characterID string
	taskID      string
	period      period.Period
	half        tracker.Half
	archived    bool
}

type (
	tickMsg     time.Time
	promptMsg   focus.Prompt
	snapshotMsg struct{ db *tracker.Database }
	watchMsg    store.Event
)

// App is the bubbletea model for the board.
type App struct {
	s  *session.Session
	fc *focus.Controller
	p  store.Persistence

	tab          int
	cursor       int
	rows         []row
	mode         mode
	input        textinput.Model
	addPeriod    int
	prompt       *focus.Prompt
	pendingRow   *row
	showArchived bool
	message      string
	width        int
	height       int
}

// New creates the board model over an open session.
func New(s *session.Session, fc *focus.Controller, p store.Persistence) *App {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40

	a := &App{s: s, fc: fc, p: p, input: ti}
	a.rebuildRows()
	return a
}

func (a *App) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tickMsg:
		// Countdowns re-render; the minute sweep runs in the session.
		return a, tick()

	case snapshotMsg:
		a.rebuildRows()
		return a, nil

	case watchMsg:
		if err := a.s.Reload(); err == nil {
			a.rebuildRows()
		}
		return a, nil

	case promptMsg:
		p := focus.Prompt(msg)
		a.prompt = &p
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.mode {
	case modeAddTask, modeAddCharacter:
		return a.handleInputKey(msg)
	case modeConfirmDelete:
		return a.handleConfirmKey(msg)
	}

	if a.prompt != nil {
		switch msg.String() {
		case "y":
			p := *a.prompt
			a.prompt = nil
			a.fail(a.fc.Resolve(p.CharacterID, p.TaskID, true))
			a.rebuildRows()
			return a, nil
		case "n":
			p := *a.prompt
			a.prompt = nil
			a.fail(a.fc.Resolve(p.CharacterID, p.TaskID, false))
			a.rebuildRows()
			return a, nil
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "left", "h":
		a.switchTab(-1)
	case "right", "l", "tab":
		a.switchTab(1)

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.rows)-1 {
			a.cursor++
		}

	case "enter", " ":
		a.toggleSelected()
	case "f":
		a.focusSelected()
	case "K":
		a.moveSelected(-1)
	case "J":
		a.moveSelected(+1)
	case "e":
		a.archiveSelected()
	case "d":
		a.deleteSelected()
	case "v":
		a.showArchived = !a.showArchived
		a.rebuildRows()

	case "a":
		a.mode = modeAddTask
		a.addPeriod = 0
		a.input.Placeholder = "task title"
		a.input.SetValue("")
		a.input.Focus()
	case "c":
		a.mode = modeAddCharacter
		a.input.Placeholder = "character name"
		a.input.SetValue("")
		a.input.Focus()
	}
	return a, nil
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBoard
		a.input.Blur()
		return a, nil
	case "left":
		if a.mode == modeAddTask {
			a.addPeriod = (a.addPeriod + len(period.All()) - 1) % len(period.All())
			return a, nil
		}
	case "right":
		if a.mode == modeAddTask {
			a.addPeriod = (a.addPeriod + 1) % len(period.All())
			return a, nil
		}
	case "enter":
		value := strings.TrimSpace(a.input.Value())
		a.input.Blur()
		m := a.mode
		a.mode = modeBoard
		if value == "" {
			return a, nil
		}
		if m == modeAddCharacter {
			a.fail(a.s.Update(func(db *tracker.Database) {
				db.Characters = append(db.Characters, tracker.NewCharacter(value, a.s.Now()))
			}))
		} else if c := a.character(); c != nil {
			id := c.ID
			p := period.All()[a.addPeriod]
			a.fail(a.s.Update(func(db *tracker.Database) {
				if c := db.Character(id); c != nil {
					c.Tasks = append(c.Tasks, tracker.NewTask(value, p, tracker.OriginUser))
				}
			}))
		}
		a.rebuildRows()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if r := a.pendingRow; r != nil {
			a.fc.Cancel(r.characterID, r.taskID)
			a.fail(a.s.Update(func(db *tracker.Database) {
				if c := db.Character(r.characterID); c != nil {
					c.RemoveTask(r.taskID)
				}
			}))
		}
		fallthrough
	case "n", "esc":
		a.pendingRow = nil
		a.mode = modeBoard
		a.rebuildRows()
	}
	return a, nil
}

func (a *App) switchTab(delta int) {
	n := len(a.s.DB().Characters)
	if n == 0 {
		return
	}
	a.tab = (a.tab + delta + n) % n
	a.cursor = 0
	a.rebuildRows()
}

func (a *App) character() *tracker.Character {
	db := a.s.DB()
	if a.tab >= len(db.Characters) {
		a.tab = 0
	}
	if len(db.Characters) == 0 {
		return nil
	}
	return &db.Characters[a.tab]
}

func (a *App) selected() *row {
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return nil
	}
	return &a.rows[a.cursor]
}

func (a *App) toggleSelected() {
	r := a.selected()
	if r == nil || r.archived {
		return
	}
	a.fc.Cancel(r.characterID, r.taskID)
	a.fail(a.s.Update(func(db *tracker.Database) {
		if _, task := db.Task(r.characterID, r.taskID); task != nil {
			task.Toggle(a.s.Rules(), a.s.Now())
		}
	}))
	a.rebuildRows()
}

func (a *App) focusSelected() {
	r := a.selected()
	if r == nil || r.archived {
		return
	}
	a.fail(a.fc.Start(r.characterID, r.taskID))
	a.rebuildRows()
}

func (a *App) archiveSelected() {
	r := a.selected()
	if r == nil {
		return
	}
	a.fc.Cancel(r.characterID, r.taskID)
	restore := r.archived
	a.fail(a.s.Update(func(db *tracker.Database) {
		_, task := db.Task(r.characterID, r.taskID)
		if task == nil {
			return
		}
		if restore {
			task.Restore()
		} else {
			task.Archive(a.s.Now())
		}
	}))
	a.rebuildRows()
}

func (a *App) deleteSelected() {
	r := a.selected()
	if r == nil {
		return
	}
	_, task := a.s.DB().Task(r.characterID, r.taskID)
	if task == nil {
		return
	}
	if task.Origin == tracker.OriginSystem {
		a.message = "system tasks can only be archived"
		return
	}
	pending := *r
	a.pendingRow = &pending
	a.mode = modeConfirmDelete
}

// moveSelected shifts the selected task one slot within its (period, half)
// subgroup.
func (a *App) moveSelected(delta int) {
	r := a.selected()
	if r == nil || r.archived {
		return
	}
	c := a.character()
	if c == nil || c.ID != r.characterID {
		return
	}

	var group []string
	pos := -1
	for _, other := range a.rows {
		if other.archived || other.characterID != r.characterID ||
			other.period != r.period || other.half != r.half {
			continue
		}
		if other.taskID == r.taskID {
			pos = len(group)
		}
		group = append(group, other.taskID)
	}
	target := pos + delta
	if pos < 0 || target < 0 || target >= len(group) {
		return
	}
	group[pos], group[target] = group[target], group[pos]

	a.fail(a.s.Update(func(db *tracker.Database) {
		if c := db.Character(r.characterID); c != nil {
			tracker.Reorder(c, r.period, group, r.half, a.s.Now())
		}
	}))
	a.rebuildRows()
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
}

// rebuildRows flattens the current character's board into display rows:
// per period the open tasks then the done tasks, plus the archived section
// when visible.
func (a *App) rebuildRows() {
	a.rows = a.rows[:0]
	c := a.character()
	if c == nil {
		a.cursor = 0
		return
	}
	now := a.s.Now()

	for _, p := range period.All() {
		for _, half := range []tracker.Half{tracker.HalfOpen, tracker.HalfDone} {
			for _, task := range c.Tasks {
				if task.Period != p || task.Archived() {
					continue
				}
				if (half == tracker.HalfDone) != task.IsDone(now) {
					continue
				}
				a.rows = append(a.rows, row{
					characterID: c.ID,
					taskID:      task.ID,
					period:      p,
					half:        half,
				})
			}
		}
	}
	if a.showArchived {
		for _, task := range c.Tasks {
			if task.Archived() {
				a.rows = append(a.rows, row{
					characterID: c.ID,
					taskID:      task.ID,
					period:      task.Period,
					archived:    true,
				})
			}
		}
	}
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) fail(err error) {
	if err != nil {
		a.message = err.Error()
	} else {
		a.message = ""
	}
}

func (a *App) View() string {
	db := a.s.DB()
	now := a.s.Now()
	var b strings.Builder

	header := fmt.Sprintf("%s [%s]", db.Profile.DisplayName, a.s.Code())
	b.WriteString(titleStyle.Render(header))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  rev %d  %s", db.Meta.Revision, now.Format("15:04:05"))))
	b.WriteString("\n\n")

	if len(db.Characters) == 0 {
		b.WriteString("No characters yet. Press c to add one.\n")
	} else {
		for i, c := range db.Characters {
			style := tabStyle
			if i == a.tab {
				style = activeTabStyle
			}
			b.WriteString(style.Render(c.Name))
		}
		b.WriteString("\n\n")
		a.renderBoard(&b, now)
	}

	b.WriteString("\n")
	switch {
	case a.prompt != nil:
		b.WriteString(alertStyle.Render(fmt.Sprintf("Focus finished. Did you get %q done? (y/n)", a.prompt.Title)))
	case a.mode == modeAddTask:
		b.WriteString(fmt.Sprintf("Add %s task (←/→ period, enter to save, esc to cancel)\n", period.All()[a.addPeriod]))
		b.WriteString(a.input.View())
	case a.mode == modeAddCharacter:
		b.WriteString("Add character (enter to save, esc to cancel)\n")
		b.WriteString(a.input.View())
	case a.mode == modeConfirmDelete:
		b.WriteString(alertStyle.Render("Delete this task? (y/n)"))
	case a.message != "":
		b.WriteString(alertStyle.Render(a.message))
	default:
		b.WriteString(helpStyle.Render("enter toggle · f focus · J/K move · a add · e archive · d delete · v archived · c character · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (a *App) renderBoard(b *strings.Builder, now time.Time) {
	c := a.character()
	if c == nil {
		return
	}

	lastSection := ""
	for i, r := range a.rows {
		section := sectionName(r)
		if section != lastSection {
			if lastSection != "" {
				b.WriteString("\n")
			}
			label := section
			if !r.archived {
				label = fmt.Sprintf("%s %s", section, r.period.Key(now))
			}
			b.WriteString(sectionStyle.Render(label))
			b.WriteString("\n")
			lastSection = section
		}
		b.WriteString(a.renderRow(c, r, i == a.cursor, now))
		b.WriteString("\n")
	}
	if len(a.rows) == 0 {
		b.WriteString(mutedStyle.Render("  nothing here, press a to add a task"))
		b.WriteString("\n")
	}
}

func sectionName(r row) string {
	if r.archived {
		return "Archived"
	}
	switch r.period {
	case period.Weekly:
		return "Weekly"
	case period.Monthly:
		return "Monthly"
	default:
		return "Daily"
	}
}

func (a *App) renderRow(c *tracker.Character, r row, selected bool, now time.Time) string {
	task := c.Task(r.taskID)
	if task == nil {
		return ""
	}

	status := glyph.Open
	suffix := ""
	switch {
	case r.archived:
		status = glyph.Archived
	case task.IsDone(now):
		status = glyph.Done
		if at, ok := tracker.ParseInstant(task.ResetAt); ok {
			suffix = fmt.Sprintf("  resets in %s", timeutil.Countdown(at, now))
		}
	case a.fc.State(r.characterID, r.taskID) == focus.PromptPending:
		status = glyph.Prompting
	case a.fc.State(r.characterID, r.taskID) == focus.InProgress:
		status = glyph.Focusing
		suffix = fmt.Sprintf("  %s left", timeutil.Countdown(now.Add(a.fc.Remaining(r.characterID, r.taskID)), now))
	}

	line := fmt.Sprintf("  %s %s%s", status, task.Title, suffix)
	switch {
	case selected:
		return selectedStyle.Render(line)
	case status == glyph.Done:
		return doneStyle.Render(line)
	case status == glyph.Focusing || status == glyph.Prompting:
		return focusStyle.Render(line)
	case r.archived:
		return mutedStyle.Render(line)
	default:
		return line
	}
}

// Run opens the program, wiring session change notifications, focus
// prompts, and store watch events into the bubbletea message loop.
func Run(ctx context.Context, s *session.Session, fc *focus.Controller, p store.Persistence) error {
	app := New(s, fc, p)
	program := tea.NewProgram(app, tea.WithAltScreen())

	s.OnChange(func(db *tracker.Database) {
		program.Send(snapshotMsg{db: db})
	})
	fc.OnPrompt(func(pr focus.Prompt) {
		program.Send(promptMsg(pr))
	})
	if err := s.StartSweeper(); err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if events, err := p.Watch(watchCtx); err == nil && events != nil {
		go func() {
			for ev := range events {
				program.Send(watchMsg(ev))
			}
		}()
	}

	_, err := program.Run()
	fc.Close()
	return err
}
