package info

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/glyph"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/rollover"
	"tableflip.dev/journal/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Printer     *printers.PrettyPrint
}

func (n *Info) Do(ctx context.Context) error {
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Persistence == nil {
		return errors.New("failed to create persistence object")
	}

	override := os.Getenv(store.ConfigPathEnv)
	if override == "" {
		override = "not set"
	}
	source := n.Config.Source()
	if source == "" {
		source = "defaults and environment"
	}

	pp.Title("Config")
	pp.Table(
		[2]string{store.ConfigPathEnv, override},
		[2]string{"config", source},
		[2]string{"path", n.Config.BasePath()},
		[2]string{"editor", n.Config.Editor()},
		[2]string{"log_level", n.Config.LogLevel().String()},
	)
	pp.NewLine()

	names, err := n.Persistence.List(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotExist) {
			pp.Title("Latest entry")
			pp.Todos()
			return nil
		}
		return err
	}

	latest, ok := rollover.Latest(names)
	pp.Title(fmt.Sprintf("Latest entry (%d files)", len(names)))
	if !ok {
		pp.Todos()
		return nil
	}
	doc, err := n.Persistence.Read(latest)
	if err != nil {
		return err
	}
	e, err := entry.Parse(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", latest, err)
	}
	pp.TitleWithCount(latest, len(e.Open()))
	pp.Todos(e.Todos...)
	legend(pp)
	return nil
}

func legend(pp *printers.PrettyPrint) {
	rows := make([][2]string, 0, 2)
	for _, g := range glyph.DefaultGlyphs() {
		rows = append(rows, [2]string{g.Symbol, g.Key + " " + g.Meaning})
	}
	pp.Table(rows...)
}
