package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/journal/pkg/runner/create"
)

func addCreate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "create",
		Short: base.Wrap80("Create today's entry with the open todos of the latest one, then open it."),
		Example: `
journal create
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, ed, err := load()
			if err != nil {
				return err
			}
			s := create.Create{
				Persistence: p,
				Editor:      ed,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
