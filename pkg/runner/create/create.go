// Package create provides the runner logic for starting today's entry.
package create

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/journal/pkg/editor"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/rollover"
	"tableflip.dev/journal/pkg/store"
)

// Create rolls the open todos of the latest entry into today's entry,
// writes it and opens it in the editor.
type Create struct {
	Persistence store.Persistence
	Editor      editor.Launcher
	Printer     *printers.PrettyPrint
	// Now defaults to time.Now.
	Now func() time.Time
}

// Do builds, writes and opens today's entry. Nothing is written when the
// build fails.
func (n *Create) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not create, no persistence")
	}
	if n.Editor == nil {
		return errors.New("can not create, no editor")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	r := rollover.Resolver{Persistence: n.Persistence}
	res, err := r.Build(ctx, now())
	if err != nil {
		return err
	}

	name := res.Entry.FileName()
	doc := res.Entry.String()
	if n.Persistence.Exists(name) {
		log.WithField("path", n.Persistence.Path(name)).Warn("overwriting today's entry")
	}
	if err := n.Persistence.Write(name, doc); err != nil {
		return err
	}

	pp.TitleWithCount(name, len(res.Entry.Todos))
	if res.State == rollover.PriorEntryFound {
		log.WithField("prior", res.Prior).Infof("carried over %d todos", len(res.Entry.Todos))
	}
	pp.Todos(res.Entry.Todos...)

	return n.Editor.Open(ctx, n.Persistence.Path(name))
}
