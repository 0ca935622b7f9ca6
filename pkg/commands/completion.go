package commands

import (
	"context"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/datetoken"
	"tableflip.dev/journal/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(journal completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(journal completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

func entryCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	return matchEntries(p, toComplete)
}

// matchEntries lists entry names starting with prefix, newest first.
func matchEntries(p store.Persistence, prefix string) []string {
	names, err := p.List(context.Background())
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return datetoken.Compare(out[i], out[j]) > 0
	})
	return out
}
