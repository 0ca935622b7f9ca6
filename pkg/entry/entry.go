// Package entry models one day of the journal: a TODO section of checkbox
// lines followed by a free-form Notes section.
package entry

import (
	"errors"
	"strings"

	"tableflip.dev/journal/pkg/datetoken"
	"tableflip.dev/journal/pkg/todo"
)

// Extension is appended to the date token to name an entry file.
const Extension = ".md"

// ErrMissingTodoSection is returned by Parse when the document has no
// section heading.
var ErrMissingTodoSection = errors.New("entry: failed to find todo section")

// Sections holds the headings written around the todo list. Marker starts
// every heading line; the TODO section is the first one in the document.
type Sections struct {
	Marker string
	Todo   string
	Notes  string
}

// DefaultSections writes "# TODO" and "# Notes". "#TODO" reads the same.
var DefaultSections = Sections{Marker: "#", Todo: "TODO", Notes: "Notes"}

// Entry is one day's journal file.
type Entry struct {
	Date  datetoken.Token
	Todos []todo.Todo
}

// New returns an entry for date with the given todos, in order.
func New(date datetoken.Token, todos ...todo.Todo) *Entry {
	return &Entry{Date: date, Todos: todos}
}

// FileName is the date token plus Extension.
func (e *Entry) FileName() string {
	return FileName(e.Date)
}

// FileName names the entry file for a token.
func FileName(t datetoken.Token) string {
	return t.String() + Extension
}

// Open returns the todos not yet completed, in their original order.
func (e *Entry) Open() []todo.Todo {
	open := make([]todo.Todo, 0, len(e.Todos))
	for _, t := range e.Todos {
		if !t.Completed {
			open = append(open, t)
		}
	}
	return open
}

// String serializes the entry with DefaultSections and todo.DefaultFormat.
func (e *Entry) String() string {
	return DefaultSections.Format(e, todo.DefaultFormat)
}

// Format renders "# TODO\n<todos joined by \n>\n# Notes\n".
func (s Sections) Format(e *Entry, f *todo.Format) string {
	lines := make([]string, len(e.Todos))
	for i, t := range e.Todos {
		lines[i] = f.Line(t)
	}

	var b strings.Builder
	b.WriteString(s.heading(s.Todo))
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(s.heading(s.Notes))
	return b.String()
}

func (s Sections) heading(title string) string {
	return s.Marker + " " + title + "\n"
}

// Parse reads a document with DefaultSections and todo.DefaultFormat. The
// returned entry has no date; the caller knows which file it read.
func Parse(doc string) (*Entry, error) {
	return DefaultSections.Parse(doc, todo.DefaultFormat)
}

// Parse takes the body of the first section, drops its heading line and
// keeps every line that reads as a todo. Other lines are skipped.
func (s Sections) Parse(doc string, f *todo.Format) (*Entry, error) {
	body, ok := s.firstSection(doc)
	if !ok {
		return nil, ErrMissingTodoSection
	}

	e := &Entry{Todos: []todo.Todo{}}
	for _, line := range body {
		if t, ok := f.Scan(line); ok {
			e.Todos = append(e.Todos, t)
		}
	}
	return e, nil
}

// firstSection returns the lines after the first heading, up to the next.
func (s Sections) firstSection(doc string) ([]string, bool) {
	lines := strings.Split(doc, "\n")
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(line, s.Marker) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	var body []string
	for _, line := range lines[start:] {
		if strings.HasPrefix(line, s.Marker) {
			break
		}
		body = append(body, strings.TrimSuffix(line, "\r"))
	}
	return body, true
}
