// Package commands wires the cobra command tree.
package commands

import (
	"github.com/spf13/cobra"
)

// New builds the root command. Running it without a subcommand starts the
// interactive TUI.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lifetrack",
		Short:         "Journal and life tracking in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI()
		},
	}

	addStats(cmd)
	addTasks(cmd)
	addVersion(cmd)
	return cmd
}
