package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mutforge/internal/domain"
	m "gooze.dev/pkg/mutforge/internal/model"
)

var runProjectFlag string
var runWorkersFlag int
var runPercentageFlag float64
var runMaxMutationsFlag int
var runSeedFlag int64
var runTaskTimeoutFlag string
var runCheckoutDirFlag string
var runSkipCheckoutFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate and execute mutation combinations",
		Long:  runLongDescription,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindRunFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := parseProjectArgument(viper.GetString(projectFlagName))
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

			timeout, err := taskTimeout()
			if err != nil {
				return fmt.Errorf("--%s: %w", taskTimeoutFlagName, err)
			}

			return workflow.Run(cmd.Context(), domain.RunArgs{
				GenerationArgs: gen,
				Targets:        targets,
				CheckoutDir:    m.Path(viper.GetString(checkoutDirKey)),
				Reports:        m.Path(viper.GetString(outputFlagName)),
				Workers:        viper.GetInt(workersKey),
				TaskTimeout:    timeout,
				SkipCheckout:   viper.GetBool(skipCheckoutKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&runProjectFlag, projectFlagName, "", "project-bug list, e.g. Math-1,Lang-3 or Math-all")
	configureGenerationFlags(cmd)
	cmd.Flags().IntVarP(&runWorkersFlag, workersFlagName, "w", viper.GetInt(workersKey), "number of combinations executed in parallel")
	cmd.Flags().StringVar(&runTaskTimeoutFlag, taskTimeoutFlagName, viper.GetString(taskTimeoutKey), "wall clock limit per combination as a duration (20m, 90s) or plain seconds (1200), 0 disables it")
	cmd.Flags().StringVar(&runCheckoutDirFlag, checkoutDirFlagName, viper.GetString(checkoutDirKey), "directory clean checkouts are placed in")
	cmd.Flags().BoolVar(&runSkipCheckoutFlag, skipCheckoutFlagName, viper.GetBool(skipCheckoutKey), "reuse an existing checkout with its mutants.log")
}

// bindRunFlags binds at execution time because run and list share keys.
func bindRunFlags(cmd *cobra.Command) {
	bindFlagToConfig(cmd.Flags().Lookup(projectFlagName), projectFlagName)
	bindGenerationFlags(cmd)
	bindFlagToConfig(cmd.Flags().Lookup(workersFlagName), workersKey)
	bindFlagToConfig(cmd.Flags().Lookup(taskTimeoutFlagName), taskTimeoutKey)
	bindFlagToConfig(cmd.Flags().Lookup(checkoutDirFlagName), checkoutDirKey)
	bindFlagToConfig(cmd.Flags().Lookup(skipCheckoutFlagName), skipCheckoutKey)
}

// configureGenerationFlags registers the flags shared by run and list.
func configureGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&runPercentageFlag, percentageFlagName, viper.GetFloat64(percentageKey), "percentage of mutation records to combine")
	cmd.Flags().IntVar(&runMaxMutationsFlag, maxMutationsFlagName, viper.GetInt(maxMutationsKey), "maximum mutations per combination")
	cmd.Flags().Int64Var(&runSeedFlag, seedFlagName, viper.GetInt64(seedKey), "base seed for reproducible generation")
}

func bindGenerationFlags(cmd *cobra.Command) {
	bindFlagToConfig(cmd.Flags().Lookup(percentageFlagName), percentageKey)
	bindFlagToConfig(cmd.Flags().Lookup(maxMutationsFlagName), maxMutationsKey)
	bindFlagToConfig(cmd.Flags().Lookup(seedFlagName), seedKey)
}
