package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/editor"
	"tableflip.dev/journal/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "journal",
		Short: base.Wrap80("A daily work journal that carries open todos forward."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addOpen(topLevel)
	addCreate(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// load reads the config, applies its log level and builds the collaborators
// every subcommand shares.
func load() (store.Config, store.Persistence, *editor.Command, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	log.SetLevel(cfg.LogLevel())

	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	log.WithFields(log.Fields{
		"path":   cfg.BasePath(),
		"editor": cfg.Editor(),
		"config": cfg.Source(),
	}).Debug("loaded config")
	return cfg, p, editor.New(cfg.Editor()), nil
}
