// Package cmd provides the root command and CLI setup for mutforge.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gooze.dev/pkg/mutforge/internal/adapter"
	"gooze.dev/pkg/mutforge/internal/controller"
	"gooze.dev/pkg/mutforge/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var reaper adapter.ProcessReaper
var oracle adapter.OracleAdapter
var orchestrator domain.Orchestrator
var pool domain.WorkerPool
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	reaper = adapter.NewLocalProcessReaper()
	oracle = adapter.NewLocalOracleAdapter(oracleConfig(), reaper)
	orchestrator = domain.NewOrchestrator(
		fsAdapter,
		domain.NewIsolation(fsAdapter, reaper, isolationConfig()),
		domain.NewTargetLocator(fsAdapter, viper.GetStringSlice(sourceRootsKey), viper.GetString(sourceExtensionKey)),
		domain.NewPatcher(fsAdapter),
		oracle,
		adapter.NewLocalArtifactReader(),
		domain.OrchestratorConfig{Coverage: viper.GetBool(coverageKey)},
	)
	pool = domain.NewWorkerPool(orchestrator)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		oracle,
		ui,
		domain.NewMutationLog(fsAdapter),
		domain.NewCombinationGenerator(),
		pool,
		viper.GetString(spillDirKey),
	)
}

const projectGrammarHelp = `Projects are given as a comma separated list of Project-Bug pairs:
  - Math-1           a single bug
  - Math-1,Lang-3    several bugs, reports merged per project
  - Math-all         every bug listed under projects.Math.bugs in mutforge.yaml`

const rootLongDescription = `mutforge builds higher-order mutants for Defects4J bugs: it combines the
single mutations recorded in a mutants.log into unique, reproducible
combinations, applies each combination to a private copy of the project and
lets the oracle compile, test and measure coverage for it.`

const runLongDescription = `Check out, compile and mutate each bug, then generate and execute
mutation combinations in parallel and store one JSON report per bug.

` + projectGrammarHelp

const listLongDescription = `Parse a mutants.log and show the combinations that would be generated
for it, without executing anything.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "mutforge",
		Short:         "Defects4J mutation combination generator",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for bug and project reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
	}

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
