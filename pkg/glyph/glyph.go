// Package glyph holds the symbols used to show todos in the terminal.
package glyph

import (
	"fmt"

	"tableflip.dev/journal/pkg/todo"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape     = "\x1b"
	resetCode  = 0
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

var (
	Open = Glyph{
		Key:     "[ ]",
		Symbol:  "●",
		Meaning: "todo, carried over until done",
	}
	Done = Glyph{
		Key:     "[x]",
		Symbol:  "✘",
		Meaning: "todo completed",
	}
)

func DefaultGlyphs() []Glyph {
	return []Glyph{Open, Done}
}

// For picks the glyph matching a todo's state.
func For(t todo.Todo) Glyph {
	if t.Completed {
		return Done
	}
	return Open
}

func (g Glyph) String() string {
	return g.Symbol
}
