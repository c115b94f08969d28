// Package printers renders profile boards and summaries for the command
// line surface.
package printers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"pxgdaily/pkg/glyph"
	"pxgdaily/pkg/period"
	"pxgdaily/pkg/timeutil"
	"pxgdaily/pkg/tracker"
)

type PrettyPrint struct {
	ShowID       bool
	ShowArchived bool
	Out          io.Writer
}

var spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return os.Stdout
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

// Header prints the profile banner: display name, sync code, and revision.
func (pp *PrettyPrint) Header(db *tracker.Database, code string) {
	t := color.New(color.Bold, color.Underline)
	f := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), db.Profile.DisplayName)
	if code != "" {
		_, _ = f.Fprintf(pp.out(), "  [%s]", code)
	}
	_, _ = f.Fprintf(pp.out(), "  rev %d\n", db.Meta.Revision)
}

// Character prints one character's board: each period section with its open
// and done tasks in display order, and archived tasks when enabled.
func (pp *PrettyPrint) Character(c *tracker.Character, now time.Time) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), c.Name)

	for _, p := range period.All() {
		pp.section(c, p, now)
	}
	if pp.ShowArchived {
		pp.archived(c, now)
	}
	pp.NewLine()
}

func (pp *PrettyPrint) section(c *tracker.Character, p period.Period, now time.Time) {
	var tasks []tracker.Task
	for _, task := range c.Tasks {
		if task.Period == p && !task.Archived() {
			tasks = append(tasks, task)
		}
	}

	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), "%s %s\n", sectionLabel(p), p.Key(now))
	if len(tasks) == 0 {
		none := color.New(color.Faint, color.Italic)
		_, _ = none.Fprintln(pp.out(), "  none")
		return
	}
	for _, task := range tasks {
		pp.task(task, now)
	}
}

func sectionLabel(p period.Period) string {
	switch p {
	case period.Weekly:
		return "Weekly"
	case period.Monthly:
		return "Monthly"
	default:
		return "Daily"
	}
}

func (pp *PrettyPrint) archived(c *tracker.Character, now time.Time) {
	var tasks []tracker.Task
	for _, task := range c.Tasks {
		if task.Archived() {
			tasks = append(tasks, task)
		}
	}
	if len(tasks) == 0 {
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Fprintln(pp.out(), "Archived")
	for _, task := range tasks {
		pp.task(task, now)
	}
}

func (pp *PrettyPrint) task(task tracker.Task, now time.Time) {
	line := color.New()
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	if pp.ShowID {
		_, _ = id.Fprint(pp.out(), task.ID)
		if pad := len(spacing) - len(task.ID); pad > 0 {
			_, _ = id.Fprint(pp.out(), strings.Repeat(" ", pad))
		}
	}

	status := glyph.Open
	switch {
	case task.Archived():
		status = glyph.Archived
	case task.IsDone(now):
		status = glyph.Done
	case task.DoingForKey != "":
		status = glyph.Focusing
	}

	title := task.Title
	if status == glyph.Done {
		title = glyph.Strike(title)
	}
	_, _ = line.Fprintf(pp.out(), "  %s %s", status, title)

	if status == glyph.Done {
		if at, ok := tracker.ParseInstant(task.ResetAt); ok {
			_, _ = f.Fprintf(pp.out(), "  resets in %s", timeutil.Countdown(at, now))
		}
	}
	_, _ = line.Fprintln(pp.out())
}

// Characters prints a summary table of every character on the profile.
func (pp *PrettyPrint) Characters(db *tracker.Database, now time.Time) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("Character"), bold.Sprint("Open"), bold.Sprint("Done"), bold.Sprint("Archived"))
	for _, c := range db.Characters {
		var open, done, arch int
		for _, task := range c.Tasks {
			switch {
			case task.Archived():
				arch++
			case task.IsDone(now):
				done++
			default:
				open++
			}
		}
		tbl.AddRow(c.Name, open, done, arch)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Legend prints the board symbols and their meanings.
func (pp *PrettyPrint) Legend() {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("Symbol"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
