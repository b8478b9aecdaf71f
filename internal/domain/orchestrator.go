package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gooze.dev/pkg/mutforge/internal/adapter"
	m "gooze.dev/pkg/mutforge/internal/model"
)

const maxOracleOutput = 8 * 1024

// ErrNoTargetFiles is returned when none of a combination's records could be
// mapped to a file in the workspace.
var ErrNoTargetFiles = errors.New("no target files located")

// TaskError reports the state a task was in when it failed.
type TaskError struct {
	State m.TaskState
	Err   error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s: %v", e.State, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// Task is one combination scheduled on a worker slot.
type Task struct {
	Combination m.Combination
	// Source is the clean checkout the workspace is cloned from.
	Source     m.Path
	WorkerSeed uint64
	Slot       int
	// Progress, when set, receives every state the task enters.
	Progress func(m.TaskState)
}

func (t Task) enter(state m.TaskState) {
	if t.Progress != nil {
		t.Progress(state)
	}
}

// Orchestrator coordinates applying a combination to a private copy of the
// project and asking the oracle to build, test and measure it.
type Orchestrator interface {
	Execute(ctx context.Context, task Task) (m.ExecutionResult, error)
}

// OrchestratorConfig selects the oracle mode run after a successful compile.
type OrchestratorConfig struct {
	Coverage bool
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	isolation Isolation
	locator   TargetLocator
	patcher   Patcher
	oracle    adapter.OracleAdapter
	artifacts adapter.ArtifactReader
	cfg       OrchestratorConfig
}

// NewOrchestrator constructs an Orchestrator from its collaborators.
func NewOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	isolation Isolation,
	locator TargetLocator,
	patcher Patcher,
	oracle adapter.OracleAdapter,
	artifacts adapter.ArtifactReader,
	cfg OrchestratorConfig,
) Orchestrator {
	return &orchestrator{
		fsAdapter: fsAdapter,
		isolation: isolation,
		locator:   locator,
		patcher:   patcher,
		oracle:    oracle,
		artifacts: artifacts,
		cfg:       cfg,
	}
}

func (o *orchestrator) Execute(ctx context.Context, task Task) (m.ExecutionResult, error) {
	start := time.Now()
	c := task.Combination

	result := m.ExecutionResult{
		CombinationID:  c.ID,
		Identity:       c.Identity,
		Signature:      c.Signature,
		GenerationSeed: c.GenerationSeed,
		WorkerSeed:     task.WorkerSeed,
		Records:        c.Records,
		Mutators:       c.Mutators(),
		TargetFiles:    []m.Path{},
		FailedTests:    []string{},
		AllTests:       []string{},
		Coverage:       map[string]float64{},
		MethodCoverage: map[string][]int{},
	}

	ws := o.isolation.Allocate(c)
	defer o.reclaim(ctx, ws)

	task.enter(m.StateCloning)

	if err := o.isolation.Clone(ctx, task.Source, ws.Path); err != nil {
		return m.ExecutionResult{}, &TaskError{State: m.StateCloning, Err: err}
	}

	task.enter(m.StatePatching)

	targets, err := o.patch(ctx, ws.Path, c)
	if err != nil {
		return m.ExecutionResult{}, &TaskError{State: m.StatePatching, Err: err}
	}

	result.TargetFiles = targets
	result.PatchSuccess = true

	task.enter(m.StateInvokingOracle)

	compiled, err := o.invoke(ctx, m.OracleCompile, ws.Path, c.Identity)
	if err != nil {
		return m.ExecutionResult{}, &TaskError{State: m.StateInvokingOracle, Err: err}
	}

	result.CompileSuccess = compiled.Succeeded()
	result.TimedOut = compiled.TimedOut
	result.OracleOutput = tail(compiled.Output, maxOracleOutput)

	if !result.CompileSuccess {
		slog.Info("combination does not compile", "combination", c.ID, "exitCode", compiled.ExitCode, "timedOut", compiled.TimedOut)
		result.Duration = time.Since(start)

		return result, nil
	}

	mode := m.OracleTest
	if o.cfg.Coverage {
		mode = m.OracleCoverage
	}

	run, err := o.invoke(ctx, mode, ws.Path, c.Identity)
	if err != nil {
		return m.ExecutionResult{}, &TaskError{State: m.StateInvokingOracle, Err: err}
	}

	result.OracleSuccess = run.Succeeded()
	result.TimedOut = run.TimedOut
	result.OracleOutput = tail(run.Output, maxOracleOutput)

	task.enter(m.StateCollecting)

	if err := o.collect(ctx, ws.Path, &result); err != nil {
		return m.ExecutionResult{}, &TaskError{State: m.StateCollecting, Err: err}
	}

	result.Duration = time.Since(start)

	return result, nil
}

// patch applies every locatable record, grouped per file, and returns the
// patched files relative to the workspace.
func (o *orchestrator) patch(ctx context.Context, workspace m.Path, c m.Combination) ([]m.Path, error) {
	byFile := map[m.Path][]m.MutationRecord{}
	order := []m.Path{}

	for _, r := range c.Records {
		path, err := o.locator.Locate(ctx, workspace, r.ClassKey)
		if err != nil {
			return nil, fmt.Errorf("locate %s: %w", r.ClassKey, err)
		}

		if path == "" {
			slog.Warn("target file not found, skipping record", "combination", c.ID, "class", r.ClassKey, "line", r.Line)
			continue
		}

		if _, ok := byFile[path]; !ok {
			order = append(order, path)
		}

		byFile[path] = append(byFile[path], r)
	}

	if len(order) == 0 {
		return nil, ErrNoTargetFiles
	}

	targets := make([]m.Path, 0, len(order))

	for _, path := range order {
		records := byFile[path]

		var err error
		if len(records) == 1 {
			r := records[0]
			err = o.patcher.ApplyOne(ctx, path, r.Line, r.OriginalCode, r.MutatedCode)
		} else {
			err = o.patcher.ApplyMany(ctx, path, records)
		}

		if err != nil {
			return nil, err
		}

		rel, err := o.fsAdapter.RelPath(ctx, workspace, path)
		if err != nil {
			return nil, fmt.Errorf("relative path of %s: %w", path, err)
		}

		targets = append(targets, rel)
	}

	return targets, nil
}

func (o *orchestrator) invoke(ctx context.Context, mode m.OracleMode, dir m.Path, id m.Identity) (m.OracleRun, error) {
	run, err := o.oracle.Run(ctx, m.OracleInvocation{Mode: mode, Dir: dir, Identity: id})
	if err != nil {
		return m.OracleRun{}, fmt.Errorf("oracle %s: %w", mode, err)
	}

	if run.TimedOut {
		slog.Warn("oracle timed out", "mode", mode, "dir", dir, "duration", run.Duration)
	}

	return run, nil
}

func (o *orchestrator) collect(ctx context.Context, workspace m.Path, result *m.ExecutionResult) error {
	failed, err := o.artifacts.ReadTestList(ctx, o.fsAdapter.JoinPath(ctx, string(workspace), adapter.FailingTestsFile), adapter.FailingTestPrefix)
	if err != nil {
		return fmt.Errorf("read failing tests: %w", err)
	}

	all, err := o.artifacts.ReadTestList(ctx, o.fsAdapter.JoinPath(ctx, string(workspace), adapter.AllTestsFile), "")
	if err != nil {
		return fmt.Errorf("read all tests: %w", err)
	}

	result.FailedTests = failed
	result.AllTests = all
	result.Tests = m.TestCounts{Total: len(all), Failed: len(failed)}

	if !o.cfg.Coverage {
		return nil
	}

	coverage, err := o.artifacts.ReadCoverage(ctx, o.fsAdapter.JoinPath(ctx, string(workspace), adapter.CoverageFile))
	if err != nil {
		return fmt.Errorf("read coverage: %w", err)
	}

	result.Coverage = coverage.Metrics()
	result.MethodCoverage = coverage.Methods

	return nil
}

func (o *orchestrator) reclaim(ctx context.Context, ws m.Workspace) {
	if err := o.isolation.Reclaim(ctx, ws.Path); err != nil {
		slog.Error("Failed to reclaim workspace", "combination", ws.CombinationID, "path", ws.Path, "error", err)
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[len(s)-n:]
}
