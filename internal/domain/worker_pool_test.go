package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/mutforge/internal/adapter"
	adaptermocks "gooze.dev/pkg/mutforge/internal/adapter/mocks"
	"gooze.dev/pkg/mutforge/internal/domain"
	domainmocks "gooze.dev/pkg/mutforge/internal/domain/mocks"
	m "gooze.dev/pkg/mutforge/internal/model"
)

var mathOne = m.Identity{Project: "Math", Bug: "1"}

func combinations(id m.Identity, n int) []m.Combination {
	out := make([]m.Combination, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, m.Combination{
			ID:             "mutant_" + string(rune('0'+i)),
			Identity:       id,
			GenerationSeed: uint64(i * 11),
		})
	}

	return out
}

func TestWorkerPool_RunAll_Success(t *testing.T) {
	// Arrange
	orch := domainmocks.NewMockOrchestrator(t)
	observer := domainmocks.NewMockTaskObserver(t)

	orch.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, task domain.Task) (m.ExecutionResult, error) {
			return m.ExecutionResult{CombinationID: task.Combination.ID, WorkerSeed: task.WorkerSeed}, nil
		}).Times(3)

	observer.EXPECT().TaskStarted(mock.Anything, mock.Anything).Return().Times(3)
	observer.EXPECT().TaskFinished(mock.Anything, mock.Anything, m.StateDone).Return().Times(3)

	pool := domain.NewWorkerPool(orch)
	input := combinations(mathOne, 3)

	// Act
	results, failures := pool.RunAll(context.Background(), domain.PoolArgs{
		Identity: mathOne,
		Workers:  2,
		Observer: observer,
	}, input)

	// Assert
	assert.Empty(t, failures)
	require.Len(t, results, 3)

	ids := []string{}
	for _, r := range results {
		ids = append(ids, r.CombinationID)

		var generationSeed uint64
		for _, c := range input {
			if c.ID == r.CombinationID {
				generationSeed = c.GenerationSeed
			}
		}

		assert.Equal(t, domain.WorkerSeed("Math", "1", r.CombinationID, generationSeed), r.WorkerSeed)
	}

	sort.Strings(ids)
	assert.Equal(t, []string{"mutant_1", "mutant_2", "mutant_3"}, ids)
}

func TestWorkerPool_RunAll_BoundsConcurrency(t *testing.T) {
	orch := domainmocks.NewMockOrchestrator(t)

	var (
		running atomic.Int32
		peak    atomic.Int32
		slotsMu sync.Mutex
		slots   = map[int]bool{}
	)

	orch.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, task domain.Task) (m.ExecutionResult, error) {
			now := running.Add(1)
			for {
				old := peak.Load()
				if now <= old || peak.CompareAndSwap(old, now) {
					break
				}
			}

			slotsMu.Lock()
			slots[task.Slot] = true
			slotsMu.Unlock()

			time.Sleep(20 * time.Millisecond)
			running.Add(-1)

			return m.ExecutionResult{CombinationID: task.Combination.ID}, nil
		}).Times(8)

	results, failures := domain.NewWorkerPool(orch).RunAll(context.Background(), domain.PoolArgs{
		Identity: mathOne,
		Workers:  3,
	}, combinations(mathOne, 8))

	assert.Len(t, results, 8)
	assert.Empty(t, failures)
	assert.LessOrEqual(t, peak.Load(), int32(3))

	for slot := range slots {
		assert.GreaterOrEqual(t, slot, 0)
		assert.Less(t, slot, 3)
	}
}

func TestWorkerPool_RunAll_FailureDoesNotStopSiblings(t *testing.T) {
	orch := domainmocks.NewMockOrchestrator(t)

	orch.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.Combination.ID == "mutant_2"
	})).Return(m.ExecutionResult{}, &domain.TaskError{State: m.StatePatching, Err: domain.ErrPatchMismatch}).Once()
	orch.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, task domain.Task) (m.ExecutionResult, error) {
			return m.ExecutionResult{CombinationID: task.Combination.ID}, nil
		}).Twice()

	results, failures := domain.NewWorkerPool(orch).RunAll(context.Background(), domain.PoolArgs{
		Identity: mathOne,
		Workers:  1,
	}, combinations(mathOne, 3))

	assert.Len(t, results, 2)
	require.Len(t, failures, 1)
	assert.Equal(t, "mutant_2", failures[0].CombinationID)
	assert.Equal(t, m.StatePatching, failures[0].State)
	assert.False(t, failures[0].TimedOut)
	assert.Contains(t, failures[0].Reason, "original code not found")
}

func TestWorkerPool_RunAll_IdentityMismatch(t *testing.T) {
	orch := domainmocks.NewMockOrchestrator(t)

	input := combinations(mathOne, 2)
	input[1].Identity = m.Identity{Project: "Lang", Bug: "3"}

	orch.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.Combination.ID == "mutant_1"
	})).Return(m.ExecutionResult{CombinationID: "mutant_1"}, nil).Once()

	results, failures := domain.NewWorkerPool(orch).RunAll(context.Background(), domain.PoolArgs{
		Identity: mathOne,
		Workers:  2,
	}, input)

	assert.Len(t, results, 1)
	require.Len(t, failures, 1)
	assert.Equal(t, "mutant_2", failures[0].CombinationID)
	assert.Equal(t, m.StateQueued, failures[0].State)
	assert.Contains(t, failures[0].Reason, domain.ErrIdentityMismatch.Error())
}

func TestWorkerPool_RunAll_TaskTimeout(t *testing.T) {
	orch := domainmocks.NewMockOrchestrator(t)
	observer := domainmocks.NewMockTaskObserver(t)

	orch.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.Task) (m.ExecutionResult, error) {
			<-ctx.Done()
			return m.ExecutionResult{}, &domain.TaskError{State: m.StateInvokingOracle, Err: ctx.Err()}
		}).Once()

	observer.EXPECT().TaskStarted(0, mock.Anything).Return().Once()
	observer.EXPECT().TaskFinished(0, "mutant_1", m.StateTimedOut).Return().Once()

	results, failures := domain.NewWorkerPool(orch).RunAll(context.Background(), domain.PoolArgs{
		Identity:    mathOne,
		Workers:     1,
		TaskTimeout: 30 * time.Millisecond,
		Observer:    observer,
	}, combinations(mathOne, 1))

	assert.Empty(t, results)
	require.Len(t, failures, 1)
	assert.True(t, failures[0].TimedOut)
	assert.Equal(t, m.StateTimedOut, failures[0].State)
	assert.Contains(t, failures[0].Reason, domain.ErrTaskTimeout.Error())
}

func TestWorkerPool_RunAll_CancelledBeforeStart(t *testing.T) {
	orch := domainmocks.NewMockOrchestrator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, failures := domain.NewWorkerPool(orch).RunAll(ctx, domain.PoolArgs{Identity: mathOne, Workers: 2}, combinations(mathOne, 2))

	assert.Empty(t, results)
	require.Len(t, failures, 2)

	for _, f := range failures {
		assert.Equal(t, m.StateQueued, f.State)
		assert.False(t, f.TimedOut)
	}
}

func TestWorkerPool_RunAll_Empty(t *testing.T) {
	results, failures := domain.NewWorkerPool(domainmocks.NewMockOrchestrator(t)).RunAll(context.Background(), domain.PoolArgs{Identity: mathOne}, nil)

	assert.Empty(t, results)
	assert.Empty(t, failures)
}

// A task exceeding its timeout while the oracle hangs still leaves no
// workspace behind once RunAll returns.
func TestWorkerPool_RunAll_TimeoutReclaimsWorkspace(t *testing.T) {
	source := t.TempDir()
	classFile := filepath.Join(source, "src", "org", "example", "Calc.java")
	require.NoError(t, os.MkdirAll(filepath.Dir(classFile), 0o755))
	require.NoError(t, os.WriteFile(classFile, []byte("class Calc {\n  int f() { return 1 + 2; }\n}\n"), 0o644))

	root := filepath.Join(t.TempDir(), "workspaces")
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	reaper := adaptermocks.NewMockProcessReaper(t)
	reaper.EXPECT().KillReferencing(mock.Anything, mock.Anything, mock.Anything).Return(0, nil)

	oracle := adaptermocks.NewMockOracleAdapter(t)
	oracle.EXPECT().Run(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ m.OracleInvocation) (m.OracleRun, error) {
			<-ctx.Done()
			return m.OracleRun{}, ctx.Err()
		}).Once()

	orch := domain.NewOrchestrator(
		fsAdapter,
		domain.NewIsolation(fsAdapter, reaper, domain.IsolationConfig{Root: m.Path(root)}),
		domain.NewTargetLocator(fsAdapter, nil, ""),
		domain.NewPatcher(fsAdapter),
		oracle,
		adapter.NewLocalArtifactReader(),
		domain.OrchestratorConfig{},
	)

	records := []m.MutationRecord{{ID: "1", Mutator: "AOR", ClassKey: "org.example.Calc", Line: 2, OriginalCode: "1 + 2", MutatedCode: "1 - 2"}}
	c := m.Combination{ID: "mutant_1", Identity: mathOne, Records: records, Signature: domain.Signature(records)}

	results, failures := domain.NewWorkerPool(orch).RunAll(context.Background(), domain.PoolArgs{
		Identity:    mathOne,
		Source:      m.Path(source),
		Workers:     1,
		TaskTimeout: 50 * time.Millisecond,
	}, []m.Combination{c})

	assert.Empty(t, results)
	require.Len(t, failures, 1)
	assert.True(t, failures[0].TimedOut)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTaskError(t *testing.T) {
	cause := errors.New("boom")
	err := &domain.TaskError{State: m.StateCloning, Err: cause}

	assert.Equal(t, "cloning: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}
