package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/journal/pkg/glyph"
	"tableflip.dev/journal/pkg/todo"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " todo")
	default:
		_, _ = c.Fprintln(pp.out(), " todos")
	}
}

// Todos lists todos one per line, completed ones struck through.
func (pp *PrettyPrint) Todos(todos ...todo.Todo) {
	if len(todos) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	t := color.New()
	d := color.New(color.Faint)
	for _, td := range todos {
		if td.Completed {
			_, _ = d.Fprintf(pp.out(), "%s %s\n", glyph.For(td), glyph.Strike(td.Description))
			continue
		}
		_, _ = t.Fprintf(pp.out(), "%s %s\n", glyph.For(td), td.Description)
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Table prints aligned key/value rows.
func (pp *PrettyPrint) Table(rows ...[2]string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	k := color.New(color.Faint)
	for _, r := range rows {
		tbl.AddRow(k.Sprint(r[0]), r[1])
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
