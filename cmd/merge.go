package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gooze.dev/pkg/mutforge/internal/domain"
	m "gooze.dev/pkg/mutforge/internal/model"
)

var mergeProjectsFlag []string

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge bug reports into one report per project",
		Long:  "Concatenate the results and failures of every <Project>-<Bug> report of a project into <Project>.json.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.Merge(cmd.Context(), domain.MergeArgs{Reports: reportsPath, Projects: mergeProjectsFlag})
		},
	}

	cmd.Flags().StringSliceVar(&mergeProjectsFlag, projectFlagName, nil, "projects to merge, e.g. Math,Lang")
	cobra.CheckErr(cmd.MarkFlagRequired(projectFlagName))

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
