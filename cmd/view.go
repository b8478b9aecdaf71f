package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gooze.dev/pkg/mutforge/internal/domain"
	m "gooze.dev/pkg/mutforge/internal/model"
)

var viewProjectsFlag []string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View stored bug reports",
		Long:  "View the per-bug reports of one or more projects from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath, Projects: viewProjectsFlag})
		},
	}

	cmd.Flags().StringSliceVar(&viewProjectsFlag, projectFlagName, nil, "projects to show, e.g. Math,Lang")
	cobra.CheckErr(cmd.MarkFlagRequired(projectFlagName))

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
