// Package todo reads and writes single markdown checkbox lines.
package todo

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrUnrecognizedLine is returned by Parse for a line that is not a todo.
var ErrUnrecognizedLine = errors.New("todo: unrecognized todo line")

// Format describes the checkbox spelling of a todo line. Lines are read
// with Checked or any of Unchecked and written with Checked or
// Unchecked[0].
type Format struct {
	Checked   string
	Unchecked []string

	checked   *regexp.Regexp
	unchecked *regexp.Regexp
}

// DefaultFormat writes "- [x]" and "- [ ]" and also reads the older "- []".
var DefaultFormat = NewFormat("- [x]", "- [ ]", "- []")

// NewFormat builds a Format. The first unchecked spelling is canonical.
func NewFormat(checked string, unchecked ...string) *Format {
	if len(unchecked) == 0 {
		panic("todo: at least one unchecked marker required")
	}
	alts := ""
	for i, u := range unchecked {
		if i > 0 {
			alts += "|"
		}
		alts += regexp.QuoteMeta(u)
	}
	return &Format{
		Checked:   checked,
		Unchecked: unchecked,
		checked:   regexp.MustCompile(`^` + regexp.QuoteMeta(checked) + `(.*)$`),
		unchecked: regexp.MustCompile(`^(?:` + alts + `)(.*)$`),
	}
}

// Todo is one checkbox line. Description is everything after the marker,
// leading whitespace included.
type Todo struct {
	Completed   bool
	Description string
}

// New returns an open todo.
func New(description string) Todo {
	return Todo{Description: description}
}

// Parse reads line with DefaultFormat.
func Parse(line string) (Todo, error) {
	return DefaultFormat.Parse(line)
}

// Scan reads line with DefaultFormat, reporting false instead of an error.
func Scan(line string) (Todo, bool) {
	return DefaultFormat.Scan(line)
}

// Parse matches the completed marker first, then the unchecked ones. Both
// are anchored at the start of line.
func (f *Format) Parse(line string) (Todo, error) {
	if m := f.checked.FindStringSubmatch(line); m != nil {
		return Todo{Completed: true, Description: m[1]}, nil
	}
	if m := f.unchecked.FindStringSubmatch(line); m != nil {
		return Todo{Completed: false, Description: m[1]}, nil
	}
	return Todo{}, fmt.Errorf("%w: %q", ErrUnrecognizedLine, line)
}

// Scan is Parse for callers that skip lines which are not todos.
func (f *Format) Scan(line string) (Todo, bool) {
	t, err := f.Parse(line)
	return t, err == nil
}

// Line renders t in its canonical line form.
func (f *Format) Line(t Todo) string {
	if t.Completed {
		return f.Checked + t.Description
	}
	return f.Unchecked[0] + t.Description
}

// String renders t with DefaultFormat.
func (t Todo) String() string {
	return DefaultFormat.Line(t)
}

// Complete marks the todo done.
func (t *Todo) Complete() {
	t.Completed = true
}
