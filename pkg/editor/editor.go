// Package editor hands an entry file to an interactive editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ErrNoEditor is returned when no editor command is configured.
var ErrNoEditor = errors.New("editor: no editor configured")

// Launcher opens a file and returns once the user is done with it.
type Launcher interface {
	Open(ctx context.Context, path string) error
}

// Command runs Name with Args followed by the file path, attached to the
// terminal, and waits for it to exit.
type Command struct {
	Name string
	Args []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New splits a command line such as "code -w" into a Command.
func New(cmdline string) *Command {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return &Command{}
	}
	return &Command{Name: fields[0], Args: fields[1:]}
}

func (c *Command) Open(ctx context.Context, path string) error {
	if c.Name == "" {
		return ErrNoEditor
	}
	args := append(append([]string{}, c.Args...), path)
	ex := exec.CommandContext(ctx, c.Name, args...)
	ex.Stdin = readerOr(c.Stdin, os.Stdin)
	ex.Stdout = writerOr(c.Stdout, os.Stdout)
	ex.Stderr = writerOr(c.Stderr, os.Stderr)

	log.WithField("path", path).Debugf("editor: %s", ex.String())
	if err := ex.Run(); err != nil {
		return fmt.Errorf("couldn't open %s to edit it with %s: %w", path, c.Name, err)
	}
	return nil
}

func readerOr(r io.Reader, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func writerOr(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
