package cmd

import (
	"github.com/spf13/cobra"
	"gooze.dev/pkg/mutforge/internal/domain"
)

const defaultCheckProject = "Math"

var checkProjectFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe the oracle",
		Long:  "Run the oracle's info mode for a project to verify it is installed and reachable.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Check(cmd.Context(), domain.CheckArgs{Project: checkProjectFlag})
		},
	}

	cmd.Flags().StringVar(&checkProjectFlag, projectFlagName, defaultCheckProject, "project passed to the oracle info mode")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
