package commands

import (
	"github.com/rackops/fwctl/internal/protocol"
	"github.com/spf13/cobra"
)

// creates and returns the "update" command
func update(props *CommandProps) *cobra.Command {
	var mode string
	var repository string
	var imageURI string
	var applyTime string
	var oneShot bool

	cmd := &cobra.Command{
		Use:   "update <host>",
		Short: "Run a firmware update against a host",
		Long: "Runs the full phased update workflow: pre-update health gate, " +
			"maintenance entry, firmware apply, task tracking, post-update " +
			"health gate, and maintenance exit. Use --one-shot to apply " +
			"firmware directly with no gating or maintenance handling.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &protocol.UpdateRequest{
				Host:          args[0],
				Mode:          protocol.UpdateMode(mode),
				RepositoryURL: repository,
				ApplyTime:     protocol.ApplyTime(applyTime),
			}

			if imageURI != "" {
				req.Components = []protocol.Component{
					{ImageURI: imageURI},
				}
			}

			if oneShot {
				result, err := props.Core.RunUpdate(cmd.Context(), req)

				if err != nil {
					return err
				}

				return printJSON(cmd, result)
			}

			updateJob, err := props.Core.StartUpdateJob(cmd.Context(), req)

			// a failed run still carries a printable job record
			if updateJob != nil {
				if printErr := printJSON(cmd, updateJob); printErr != nil {
					return printErr
				}
			}

			return err
		},
	}

	cmd.Flags().StringVar(
		&mode,
		"mode",
		string(protocol.ModeInstallFromRepo),
		"update mode: simple-image, install-from-repository, multipart-stream, or os-driver",
	)
	cmd.Flags().StringVar(&repository, "repository", "", "firmware repository URL")
	cmd.Flags().StringVar(&imageURI, "image-uri", "", "firmware image URI for simple-image mode")
	cmd.Flags().StringVar(
		&applyTime,
		"apply",
		string(protocol.ApplyImmediate),
		"when to apply: immediate, on-reset, or at-maintenance-window",
	)
	cmd.Flags().BoolVar(&oneShot, "one-shot", false, "skip health gating and maintenance phases")

	return cmd
}
