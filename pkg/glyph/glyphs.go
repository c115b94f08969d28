// Package glyph maps task states to the symbols the board and the terminal
// UI render them with.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape     = "\x1b"
	resetCode  = 0
	boldCode   = 1
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

// Status is the display state of a task on the board.
type Status int

const (
	Open Status = iota
	Done
	Focusing
	Prompting
	Archived
)

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Key:     "o",
			Symbol:  "○",
			Meaning: "open",
		}, {
			Key:     "x",
			Symbol:  "✔",
			Meaning: "done until reset",
		}, {
			Key:     "f",
			Symbol:  "◐",
			Meaning: "focus running",
		}, {
			Key:     "?",
			Symbol:  "?",
			Meaning: "waiting on the focus prompt",
		}, {
			Key:     "-",
			Symbol:  "⊘",
			Meaning: "archived",
		},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

func (s Status) Glyph() Glyph {
	return DefaultGlyphs()[s]
}

func (s Status) String() string {
	return s.Glyph().String()
}
