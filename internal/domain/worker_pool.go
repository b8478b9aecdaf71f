package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	m "gooze.dev/pkg/mutforge/internal/model"
	"golang.org/x/sync/errgroup"
)

// Scheduling errors.
var (
	ErrIdentityMismatch = errors.New("combination identity does not match run")
	ErrTaskTimeout      = errors.New("task timed out")
)

// TaskObserver is notified as tasks move through the pool. Implementations
// must be safe for concurrent use.
type TaskObserver interface {
	TaskStarted(slot int, c m.Combination)
	TaskStateChanged(slot int, combinationID string, state m.TaskState)
	TaskFinished(slot int, combinationID string, state m.TaskState)
}

// PoolArgs contains the arguments for running a batch of combinations.
type PoolArgs struct {
	Identity    m.Identity
	Source      m.Path
	Workers     int
	TaskTimeout time.Duration
	Observer    TaskObserver
}

// WorkerPool runs combinations concurrently with a bounded number of workers.
type WorkerPool interface {
	// RunAll executes every combination. A failing task never stops its
	// siblings; results and failures are in completion order.
	RunAll(ctx context.Context, args PoolArgs, combinations []m.Combination) ([]m.ExecutionResult, []m.TaskFailure)
}

type workerPool struct {
	Orchestrator
}

// NewWorkerPool creates a WorkerPool that executes tasks with orchestrator.
func NewWorkerPool(orchestrator Orchestrator) WorkerPool {
	return &workerPool{Orchestrator: orchestrator}
}

func (p *workerPool) RunAll(ctx context.Context, args PoolArgs, combinations []m.Combination) ([]m.ExecutionResult, []m.TaskFailure) {
	results := []m.ExecutionResult{}
	failures := []m.TaskFailure{}

	var (
		resultsMutex  sync.Mutex
		failuresMutex sync.Mutex
	)

	addFailure := func(f m.TaskFailure) {
		failuresMutex.Lock()
		failures = append(failures, f)
		failuresMutex.Unlock()
	}

	workers := max(args.Workers, 1)

	slots := make(chan int, workers)
	for i := range workers {
		slots <- i
	}

	var group errgroup.Group
	group.SetLimit(workers)

	for _, c := range combinations {
		if c.Identity != args.Identity {
			slog.Warn("skipping combination tagged for another run",
				"combination", c.ID, "identity", c.Identity.String(), "expected", args.Identity.String())
			addFailure(m.TaskFailure{
				CombinationID: c.ID,
				State:         m.StateQueued,
				Reason:        fmt.Sprintf("%v: %s != %s", ErrIdentityMismatch, c.Identity, args.Identity),
			})

			continue
		}

		currentCombination := c

		group.Go(func() error {
			slot := <-slots
			defer func() { slots <- slot }()

			result, failure := p.runTask(ctx, args, slot, currentCombination)
			if failure != nil {
				addFailure(*failure)
				return nil
			}

			resultsMutex.Lock()
			results = append(results, result)
			resultsMutex.Unlock()

			return nil
		})
	}

	_ = group.Wait()

	return results, failures
}

func (p *workerPool) runTask(ctx context.Context, args PoolArgs, slot int, c m.Combination) (m.ExecutionResult, *m.TaskFailure) {
	observer := args.Observer
	if observer != nil {
		observer.TaskStarted(slot, c)
	}

	finish := func(state m.TaskState) {
		if observer != nil {
			observer.TaskFinished(slot, c.ID, state)
		}
	}

	if err := ctx.Err(); err != nil {
		finish(m.StateFailed)
		return m.ExecutionResult{}, &m.TaskFailure{CombinationID: c.ID, State: m.StateQueued, Reason: err.Error()}
	}

	taskCtx, cancel := p.taskContext(ctx, args.TaskTimeout)
	defer cancel()

	task := Task{
		Combination: c,
		Source:      args.Source,
		WorkerSeed:  WorkerSeed(c.Identity.Project, c.Identity.Bug, c.ID, c.GenerationSeed),
		Slot:        slot,
	}

	if observer != nil {
		task.Progress = func(state m.TaskState) { observer.TaskStateChanged(slot, c.ID, state) }
	}

	slog.Debug("task started", "combination", c.ID, "slot", slot, "workerSeed", task.WorkerSeed)

	result, err := p.Execute(taskCtx, task)
	if err == nil {
		finish(m.StateDone)
		return result, nil
	}

	state := m.StateFailed

	var taskErr *TaskError
	if errors.As(err, &taskErr) {
		state = taskErr.State
	}

	if errors.Is(taskCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		slog.Warn("task timed out", "combination", c.ID, "state", state, "timeout", args.TaskTimeout)
		finish(m.StateTimedOut)

		return m.ExecutionResult{}, &m.TaskFailure{
			CombinationID: c.ID,
			State:         m.StateTimedOut,
			Reason:        fmt.Sprintf("%v after %s in %s", ErrTaskTimeout, args.TaskTimeout, state),
			TimedOut:      true,
		}
	}

	slog.Error("Task failed", "combination", c.ID, "state", state, "error", err)
	finish(m.StateFailed)

	return m.ExecutionResult{}, &m.TaskFailure{CombinationID: c.ID, State: state, Reason: err.Error()}
}

func (p *workerPool) taskContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}
