// Package open provides the runner logic for editing an existing entry.
package open

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"tableflip.dev/journal/pkg/datetoken"
	"tableflip.dev/journal/pkg/editor"
	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/store"
)

// Open hands an entry file to the editor without building or rolling over.
type Open struct {
	Persistence store.Persistence
	Editor      editor.Launcher
	// Name is a file name or bare date token; empty means today. Only a
	// bare token gets the entry extension appended.
	Name string
	// Now defaults to time.Now.
	Now func() time.Time
}

// FileName resolves Name to the entry file name.
func (n *Open) FileName() string {
	name := strings.TrimSpace(n.Name)
	if name == "" {
		now := time.Now
		if n.Now != nil {
			now = n.Now
		}
		return entry.FileName(datetoken.Encode(now()))
	}
	if _, err := datetoken.Decode(name); err == nil && filepath.Ext(name) == "" {
		name += entry.Extension
	}
	return name
}

// Do opens the resolved file. A missing file is opened anyway; the editor
// decides what to do with a new path.
func (n *Open) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open, no persistence")
	}
	if n.Editor == nil {
		return errors.New("can not open, no editor")
	}
	name := n.FileName()
	if strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("entry %q must be a file name, not a path", name)
	}
	return n.Editor.Open(ctx, n.Persistence.Path(name))
}
