// Package rollover builds today's entry from the most recent one on disk,
// carrying forward the todos that were not completed.
package rollover

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/journal/pkg/datetoken"
	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/store"
)

// ErrPriorEntryUnreadable is returned when the most recent entry exists but
// has no recognizable structure.
var ErrPriorEntryUnreadable = errors.New("rollover: prior entry unreadable")

// State is where Build ended up.
type State int

const (
	// NoPriorEntry means today starts with an empty todo list.
	NoPriorEntry State = iota
	// PriorEntryFound means open todos were carried over from Result.Prior.
	PriorEntryFound
	// Failed means Build returned an error.
	Failed
)

func (s State) String() string {
	switch s {
	case NoPriorEntry:
		return "NoPriorEntry"
	case PriorEntryFound:
		return "PriorEntryFound"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is the outcome of Build.
type Result struct {
	State State
	// Prior is the file name the todos came from, if any.
	Prior string
	Entry *entry.Entry
}

// Resolver builds new entries from a Persistence.
type Resolver struct {
	Persistence store.Persistence
}

// Build returns the entry for today. A missing directory is created and a
// missing prior file is treated as no prior entry; a prior file that does
// not parse is an error wrapping ErrPriorEntryUnreadable.
func (r *Resolver) Build(ctx context.Context, today time.Time) (*Result, error) {
	if r.Persistence == nil {
		return &Result{State: Failed}, errors.New("rollover: no persistence configured")
	}
	fresh := func() *Result {
		return &Result{State: NoPriorEntry, Entry: entry.New(datetoken.Encode(today))}
	}

	names, err := r.Persistence.List(ctx)
	if err != nil {
		log.WithField("cause", err).Debug("rollover: entry directory not listable, starting fresh")
		if err := r.Persistence.EnsureDir(); err != nil {
			return &Result{State: Failed}, err
		}
		return fresh(), nil
	}

	latest, ok := Latest(names)
	if !ok {
		log.Debug("rollover: no prior entry")
		return fresh(), nil
	}
	logEntry := log.WithField("prior", latest)

	doc, err := r.Persistence.Read(latest)
	if err != nil {
		if errors.Is(err, store.ErrNotExist) {
			logEntry.Debug("rollover: prior entry vanished, starting fresh")
			return fresh(), nil
		}
		return &Result{State: Failed, Prior: latest}, err
	}

	prior, err := entry.Parse(doc)
	if err != nil {
		return &Result{State: Failed, Prior: latest}, fmt.Errorf("%w: %s: %w", ErrPriorEntryUnreadable, latest, err)
	}

	open := prior.Open()
	logEntry.WithFields(log.Fields{
		"todos":  len(prior.Todos),
		"open":   len(open),
		"target": datetoken.Encode(today),
	}).Debug("rollover: carrying over open todos")

	return &Result{
		State: PriorEntryFound,
		Prior: latest,
		Entry: entry.New(datetoken.Encode(today), open...),
	}, nil
}

// Latest picks the name with the greatest date. Names that are not date
// tokens never win; ties keep the first seen. It reports false when no
// name decodes.
func Latest(names []string) (string, bool) {
	latest := ""
	found := false
	for _, name := range names {
		if _, err := datetoken.Decode(name); err != nil {
			log.WithField("cause", err).Debugf("rollover: skipping %s", name)
			continue
		}
		if !found || datetoken.Compare(name, latest) > 0 {
			latest = name
			found = true
		}
	}
	return latest, found
}
