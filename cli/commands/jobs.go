package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// creates and returns the "jobs" command
func jobs(props *CommandProps) *cobra.Command {
	var host string
	var id string

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List recorded update jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result any
			var err error

			switch {
			case id != "":
				result, err = props.Core.GetJob(id)
			case host != "":
				result, err = props.Core.GetJobsByHost(host)
			default:
				result, err = props.Core.GetAllJobs()
			}

			if err != nil {
				return err
			}

			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "only show jobs for this host")
	cmd.Flags().StringVar(&id, "id", "", "show a single job by id")

	cmd.AddCommand(jobPhase(props))

	return cmd
}

// creates and returns the "jobs phase" sub-command
func jobPhase(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase <job-id>",
		Short: "Print the current phase of an update job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phase, err := props.Core.CurrentPhase(args[0])

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(phase))

			return nil
		},
	}

	return cmd
}
