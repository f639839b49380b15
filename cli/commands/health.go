package commands

import (
	"github.com/spf13/cobra"
)

// creates and returns the "health" command
func health(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health <host>",
		Short: "Check controller reachability on every protocol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := props.Core.Health(cmd.Context(), args[0])

			return printJSON(cmd, results)
		},
	}

	return cmd
}
