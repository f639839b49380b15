package commands

import (
	"github.com/spf13/cobra"
)

// creates and returns the "detect" command
func detect(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <host>",
		Short: "Scan a host for supported management protocols",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := props.Core.Detect(cmd.Context(), args[0])

			return printJSON(cmd, result)
		},
	}

	return cmd
}
