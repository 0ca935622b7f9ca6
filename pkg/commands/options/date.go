// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// DateOptions selects an entry file by name.
type DateOptions struct {
	Date string
}

// AddDateArgs wires --date on the provided command.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Entry file to open, example: --date="3-4-2024.md" or --date=3-4-2024. Defaults to today.`)
}
