package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gooze.dev/pkg/mutforge/internal/adapter"
	"gooze.dev/pkg/mutforge/internal/controller"
	m "gooze.dev/pkg/mutforge/internal/model"
	pkg "gooze.dev/pkg/mutforge/pkg"
	"gopkg.in/yaml.v3"
)

// ErrAllBugsFailed is returned by Run when no requested bug produced a report.
var ErrAllBugsFailed = errors.New("every bug pipeline failed")

// GenerationArgs are the knobs shared by planning and running.
type GenerationArgs struct {
	Percentage   float64
	MaxMutations int
	Seed         int64
}

// RunArgs contains the arguments for the full per-bug pipeline.
type RunArgs struct {
	GenerationArgs
	Targets      []m.Identity
	CheckoutDir  m.Path
	Reports      m.Path
	Workers      int
	TaskTimeout  time.Duration
	SkipCheckout bool
}

// ListArgs contains the arguments for planning combinations from a log.
type ListArgs struct {
	GenerationArgs
	Log      m.Path
	Identity m.Identity
	// Plan, when set, receives the combinations as YAML.
	Plan m.Path
}

// MergeArgs contains the arguments for merging bug reports per project.
type MergeArgs struct {
	Reports  m.Path
	Projects []string
}

// ViewArgs contains the arguments for displaying stored reports.
type ViewArgs struct {
	Reports  m.Path
	Projects []string
}

// CheckArgs contains the arguments for probing the oracle.
type CheckArgs struct {
	Project string
}

// Workflow drives the commands exposed by the CLI.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args ListArgs) error
	Merge(ctx context.Context, args MergeArgs) error
	View(ctx context.Context, args ViewArgs) error
	Check(ctx context.Context, args CheckArgs) error
}

// Plan is the YAML document written by List.
type Plan struct {
	Identity     m.Identity      `yaml:"identity"`
	Seed         int64           `yaml:"seed"`
	TotalRecords int             `yaml:"total_records"`
	Requested    int             `yaml:"requested"`
	Shortfall    int             `yaml:"shortfall"`
	Combinations []m.Combination `yaml:"combinations"`
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	oracle      adapter.OracleAdapter
	ui          controller.UI
	log         MutationLog
	generator   CombinationGenerator
	pool        WorkerPool
	spillDir    string
	now         func() time.Time
}

// NewWorkflow creates a Workflow with the provided dependencies. Results of
// a run are spilled to files under spillDir until the final score is known.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	oracle adapter.OracleAdapter,
	ui controller.UI,
	log MutationLog,
	generator CombinationGenerator,
	pool WorkerPool,
	spillDir string,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		oracle:      oracle,
		ui:          ui,
		log:         log,
		generator:   generator,
		pool:        pool,
		spillDir:    spillDir,
		now:         time.Now,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if len(args.Targets) == 0 {
		return errors.New("no project-bug targets given")
	}

	if err := w.ui.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	results, err := pkg.NewFileSpill[m.ExecutionResult](w.spillDir)
	if err != nil {
		return fmt.Errorf("create result spill: %w", err)
	}
	defer func() { _ = results.Discard() }()

	failedBugs := 0
	project := ""

	for _, id := range args.Targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		if project != "" && project != id.Project {
			w.mergeProject(ctx, args.Reports, project)
		}

		project = id.Project

		report, err := w.runBug(ctx, args, id)
		if err != nil {
			failedBugs++

			slog.Error("Bug pipeline failed", "identity", id.String(), "error", err)

			continue
		}

		if err := results.AppendBatch(report.Results); err != nil {
			return fmt.Errorf("spill results: %w", err)
		}

		w.ui.DisplayBugSummary(ctx, report)
	}

	if project != "" {
		w.mergeProject(ctx, args.Reports, project)
	}

	score, err := mutationScoreFromResults(results)
	if err != nil {
		return fmt.Errorf("compute mutation score: %w", err)
	}

	w.ui.DisplayMutationScore(ctx, score)

	slog.Info("run finished", "bugs", len(args.Targets), "failedBugs", failedBugs, "results", results.Len())

	if failedBugs == len(args.Targets) {
		return ErrAllBugsFailed
	}

	return nil
}

func (w *workflow) runBug(ctx context.Context, args RunArgs, id m.Identity) (m.BugReport, error) {
	checkout := w.fsAdapter.JoinPath(ctx, string(args.CheckoutDir), id.Project+"_"+id.Bug)

	if !args.SkipCheckout {
		if err := w.prepareCheckout(ctx, args.CheckoutDir, checkout, id); err != nil {
			return m.BugReport{}, err
		}
	}

	logPath, err := w.log.Find(ctx, checkout)
	if err != nil {
		return m.BugReport{}, err
	}

	records, err := w.log.ParseAll(ctx, logPath)
	if err != nil {
		return m.BugReport{}, err
	}

	requested := MutantCount(len(records), args.Percentage)

	generated := w.generator.Generate(m.GenerationParams{
		Seed:              args.Seed,
		Identity:          id,
		Count:             requested,
		MaxPerCombination: args.MaxMutations,
	}, records)

	w.ui.DisplayRunInfo(ctx, id, len(generated.Combinations), args.Workers)

	executed, failures := w.pool.RunAll(ctx, PoolArgs{
		Identity:    id,
		Source:      checkout,
		Workers:     args.Workers,
		TaskTimeout: args.TaskTimeout,
		Observer:    w.ui,
	}, generated.Combinations)

	report := m.BugReport{
		Identity:     id,
		Timestamp:    w.now(),
		TotalRecords: len(records),
		Requested:    requested,
		Shortfall:    generated.Shortfall,
		Results:      executed,
		Failures:     failures,
	}

	path, err := w.reportStore.SaveReport(ctx, args.Reports, report)
	if err != nil {
		return m.BugReport{}, fmt.Errorf("save report: %w", err)
	}

	slog.Info("bug finished",
		"identity", id.String(),
		"succeeded", len(executed),
		"failed", len(failures),
		"report", path,
	)

	return report, nil
}

// prepareCheckout checks the fixed version out, builds it and lets the
// oracle write the mutation log.
func (w *workflow) prepareCheckout(ctx context.Context, root, checkout m.Path, id m.Identity) error {
	if err := w.fsAdapter.MkdirAll(ctx, root); err != nil {
		return fmt.Errorf("create checkout dir: %w", err)
	}

	if err := w.fsAdapter.RemoveAll(ctx, checkout); err != nil {
		return fmt.Errorf("clear checkout: %w", err)
	}

	steps := []m.OracleInvocation{
		{Mode: m.OracleCheckout, Dir: root, Identity: id, Target: checkout},
		{Mode: m.OracleCompile, Dir: checkout, Identity: id},
		{Mode: m.OracleMutation, Dir: checkout, Identity: id},
	}

	for _, inv := range steps {
		run, err := w.oracle.Run(ctx, inv)
		if err != nil {
			return fmt.Errorf("oracle %s: %w", inv.Mode, err)
		}

		if !run.Succeeded() {
			slog.Error("Oracle step failed", "mode", inv.Mode, "identity", id.String(), "exitCode", run.ExitCode, "timedOut", run.TimedOut)
			return fmt.Errorf("oracle %s failed with exit code %d (timed out: %t)", inv.Mode, run.ExitCode, run.TimedOut)
		}
	}

	return nil
}

func (w *workflow) mergeProject(ctx context.Context, reports m.Path, project string) {
	path, err := w.reportStore.MergeProject(ctx, reports, project)
	if err != nil {
		slog.Error("Failed to merge project reports", "project", project, "error", err)
		return
	}

	slog.Info("merged project reports", "project", project, "path", path)
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.ui.Start(ctx, controller.WithPlanMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	records, err := w.log.ParseAll(ctx, args.Log)
	if err != nil {
		w.ui.Close(ctx)
		return err
	}

	requested := MutantCount(len(records), args.Percentage)
	generated := w.generator.Generate(m.GenerationParams{
		Seed:              args.Seed,
		Identity:          args.Identity,
		Count:             requested,
		MaxPerCombination: args.MaxMutations,
	}, records)

	if args.Plan != "" {
		plan := Plan{
			Identity:     args.Identity,
			Seed:         args.Seed,
			TotalRecords: len(records),
			Requested:    requested,
			Shortfall:    generated.Shortfall,
			Combinations: generated.Combinations,
		}

		if err := w.writePlan(ctx, args.Plan, plan); err != nil {
			w.ui.Close(ctx)
			return err
		}
	}

	if err := w.ui.DisplayPlan(ctx, args.Identity, len(records), generated); err != nil {
		w.ui.Close(ctx)
		slog.Error("Failed to display plan", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return nil
}

func (w *workflow) writePlan(ctx context.Context, path m.Path, plan Plan) error {
	content, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	if err := w.fsAdapter.WriteFileAtomic(ctx, path, content); err != nil {
		slog.Error("Failed to write plan", "path", path, "error", err)
		return fmt.Errorf("write plan: %w", err)
	}

	return nil
}

func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	if len(args.Projects) == 0 {
		return errors.New("no projects to merge")
	}

	var errs []error

	for _, project := range args.Projects {
		path, err := w.reportStore.MergeProject(ctx, args.Reports, project)
		if err != nil {
			errs = append(errs, fmt.Errorf("merge %s: %w", project, err))
			continue
		}

		slog.Info("merged project reports", "project", project, "path", path)
	}

	return errors.Join(errs...)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.ui.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}

	var reports []m.BugReport

	for _, project := range args.Projects {
		loaded, err := w.reportStore.LoadReports(ctx, args.Reports, project)
		if err != nil {
			w.ui.Close(ctx)
			return fmt.Errorf("load %s reports: %w", project, err)
		}

		reports = append(reports, loaded...)
	}

	if err := w.ui.DisplayReports(ctx, reports); err != nil {
		w.ui.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return nil
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	run, err := w.oracle.Run(ctx, m.OracleInvocation{
		Mode:     m.OracleInfo,
		Dir:      ".",
		Identity: m.Identity{Project: args.Project},
	})

	w.ui.DisplayCheck(ctx, run, err)

	if err != nil {
		return fmt.Errorf("oracle unavailable: %w", err)
	}

	if !run.Succeeded() {
		return fmt.Errorf("oracle info exited with code %d", run.ExitCode)
	}

	return nil
}
