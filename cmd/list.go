package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mutforge/internal/domain"
	m "gooze.dev/pkg/mutforge/internal/model"
)

var listLogFlag string
var listProjectFlag string
var listPlanFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the combinations generated from a mutants.log",
		Long:  listLongDescription,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindGenerationFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := listIdentity(listProjectFlag, listLogFlag)
			if err != nil {
				return err
			}

			gen, err := generationArgs(
				viper.GetFloat64(percentageKey),
				viper.GetInt(maxMutationsKey),
				viper.GetInt64(seedKey),
			)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				GenerationArgs: gen,
				Log:            m.Path(listLogFlag),
				Identity:       id,
				Plan:           m.Path(listPlanFlag),
			})
		},
	}

	cmd.Flags().StringVar(&listLogFlag, logFlagName, "", "path to mutants.log, or a directory containing one")
	cmd.Flags().StringVar(&listProjectFlag, projectFlagName, "", "project-bug the log belongs to, inferred from a <Project>_<Bug> directory when omitted")
	cmd.Flags().StringVar(&listPlanFlag, planFlagName, "", "write the combinations to this YAML file")
	cobra.CheckErr(cmd.MarkFlagRequired(logFlagName))

	configureGenerationFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// listIdentity seeds generation: the explicit project wins over the one
// inferred from the log location.
func listIdentity(project, logPath string) (m.Identity, error) {
	if project != "" {
		return m.ParseIdentity(project)
	}

	return identityFromLogPath(logPath)
}
