package entry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/journal/pkg/datetoken"
	"tableflip.dev/journal/pkg/todo"
)

func TestString(t *testing.T) {
	e := New("3-4-2024",
		todo.Todo{Completed: true, Description: " a"},
		todo.New(" b"),
	)
	assert.Equal(t, "# TODO\n- [x] a\n- [ ] b\n# Notes\n", e.String())
}

func TestStringEmpty(t *testing.T) {
	e := New("3-4-2024")
	assert.Equal(t, "# TODO\n\n# Notes\n", e.String())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "12-28-2023.md", New("12-28-2023").FileName())
	assert.Equal(t, "2-1-2024.md", FileName(datetoken.Token("2-1-2024")))
}

func TestParse(t *testing.T) {
	doc := "# TODO\n- [x] a\n- [ ] b\n\nstray text\n- [] c\n# Notes\nmet with bob\n- [ ] not a todo, in notes\n"
	e, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, []todo.Todo{
		{Completed: true, Description: " a"},
		{Completed: false, Description: " b"},
		{Completed: false, Description: " c"},
	}, e.Todos)
}

func TestParseHeadingSpellings(t *testing.T) {
	for _, doc := range []string{
		"#TODO\n- [ ] b\n#Notes\n",
		"# TODO\r\n- [ ] b\r\n# Notes\r\n",
		"preamble\n# TODO\n- [ ] b\n",
	} {
		e, err := Parse(doc)
		require.NoError(t, err, doc)
		assert.Equal(t, []todo.Todo{todo.New(" b")}, e.Todos, doc)
	}
}

func TestParseHashInDescription(t *testing.T) {
	e, err := Parse("# TODO\n- [ ] fix issue #12\n- [ ] b\n# Notes\n")
	require.NoError(t, err)
	assert.Equal(t, []todo.Todo{todo.New(" fix issue #12"), todo.New(" b")}, e.Todos)
}

func TestParseMissingTodoSection(t *testing.T) {
	for _, doc := range []string{"", "- [ ] a\n- [ ] b\n", "no headings at all"} {
		_, err := Parse(doc)
		assert.True(t, errors.Is(err, ErrMissingTodoSection), "%q: %v", doc, err)
	}
}

func TestParseEmptySection(t *testing.T) {
	e, err := Parse("# TODO\n\n# Notes\n")
	require.NoError(t, err)
	assert.Empty(t, e.Todos)
}

func TestRoundTrip(t *testing.T) {
	doc := "# TODO\n- [x] a\n- [ ] b\n- [ ] c\n# Notes\n"
	e, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, doc, e.String())

	again, err := Parse(e.String())
	require.NoError(t, err)
	assert.Equal(t, e.Todos, again.Todos)
}

func TestOpen(t *testing.T) {
	e := New("3-4-2024",
		todo.Todo{Completed: true, Description: " a"},
		todo.New(" b"),
		todo.Todo{Completed: true, Description: " x"},
		todo.New(" c"),
	)
	assert.Equal(t, []todo.Todo{todo.New(" b"), todo.New(" c")}, e.Open())
	assert.Len(t, e.Todos, 4)
}

func TestCustomSections(t *testing.T) {
	s := Sections{Marker: "##", Todo: "Tasks", Notes: "Log"}
	e := New("1-2-2024", todo.New(" one"))

	doc := s.Format(e, todo.DefaultFormat)
	assert.Equal(t, "## Tasks\n- [ ] one\n## Log\n", doc)

	got, err := s.Parse(doc, todo.DefaultFormat)
	require.NoError(t, err)
	assert.Equal(t, e.Todos, got.Todos)
}
