package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/runner/open"
)

func addOpen(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "open",
		Short: base.Wrap80("Open today's entry, or the one named by --date, without rolling over."),
		Example: `
journal open
journal open --date 3-4-2024.md
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, ed, err := load()
			if err != nil {
				return err
			}
			s := open.Open{
				Persistence: p,
				Editor:      ed,
				Name:        do.Date,
			}
			return s.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do)
	_ = cmd.RegisterFlagCompletionFunc("date", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return entryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
