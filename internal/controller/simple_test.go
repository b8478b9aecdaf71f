package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutforge/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func planResult() m.GenerationResult {
	return m.GenerationResult{
		Combinations: []m.Combination{
			{
				ID: "mutant_1",
				Records: []m.MutationRecord{
					{Mutator: "AOR", ClassKey: "org.example.Calc", Line: 5},
					{Mutator: "ROR", ClassKey: "org.example.Calc", Line: 8},
				},
			},
			{
				ID:      "mutant_2",
				Records: []m.MutationRecord{{Mutator: "LVR", ClassKey: "Dist", Line: 47}},
			},
		},
		Shortfall: 1,
	}
}

func sampleReports() []m.BugReport {
	return []m.BugReport{
		{
			Identity: m.Identity{Project: "Math", Bug: "2"},
			Results: []m.ExecutionResult{
				{CombinationID: "mutant_1", CompileSuccess: true},
			},
		},
		{
			Identity: m.Identity{Project: "Math", Bug: "1"},
			Results: []m.ExecutionResult{
				{CombinationID: "mutant_1", CompileSuccess: true, Tests: m.TestCounts{Total: 4, Failed: 1}},
				{CombinationID: "mutant_2", CompileSuccess: true, Tests: m.TestCounts{Total: 4, Failed: 2}},
				{CombinationID: "mutant_3", CompileSuccess: true, Tests: m.TestCounts{Total: 4}},
				{CombinationID: "mutant_4"},
			},
			Failures: []m.TaskFailure{{CombinationID: "mutant_5", State: m.StatePatching}},
		},
	}
}

func TestSimpleUI_DisplayPlan(t *testing.T) {
	ui, buf := newTestSimpleUI()

	err := ui.DisplayPlan(context.Background(), m.Identity{Project: "Math", Bug: "1"}, 12, planResult())
	require.NoError(t, err)

	got := buf.String()
	for _, want := range []string{"Math-1", "12 mutation records", "mutant_1", "AOR+ROR", "Calc:5, Calc:8", "mutant_2", "Dist:47", "Shortfall: 1"} {
		assert.Contains(t, got, want)
	}
}

func TestSimpleUI_DisplayPlan_CancelledContext(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayPlan(ctx, m.Identity{}, 0, m.GenerationResult{})

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestSimpleUI_TaskProgress(t *testing.T) {
	ui, buf := newTestSimpleUI()
	ctx := context.Background()

	ui.DisplayRunInfo(ctx, m.Identity{Project: "Lang", Bug: "3"}, 2, 2)

	c := m.Combination{ID: "mutant_1", Records: []m.MutationRecord{{Mutator: "AOR"}, {Mutator: "COR"}}}
	ui.TaskStarted(0, c)
	ui.TaskStateChanged(0, c.ID, m.StatePatching)
	ui.TaskFinished(0, c.ID, m.StateDone)
	ui.TaskFinished(1, "mutant_2", m.StateTimedOut)

	got := buf.String()
	assert.Contains(t, got, "Running 2 combination(s) for Lang-3 with 2 worker(s)")
	assert.Contains(t, got, "[worker 0] mutant_1 started (AOR+COR)")
	assert.Contains(t, got, "[worker 0] mutant_1 done (1/2)")
	assert.Contains(t, got, "[worker 1] mutant_2 timed-out (2/2)")
	assert.NotContains(t, got, "patching")
}

func TestSimpleUI_TaskProgress_Concurrent(t *testing.T) {
	ui, buf := newTestSimpleUI()
	ui.DisplayRunInfo(context.Background(), m.Identity{Project: "Math", Bug: "1"}, 20, 4)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)

		go func(slot int) {
			defer wg.Done()
			ui.TaskFinished(slot%4, "mutant", m.StateDone)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 21, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "(20/20)")
}

func TestSimpleUI_DisplayBugSummary(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayBugSummary(context.Background(), sampleReports()[1])

	assert.Equal(t, "Math-1: 4 processed, 1 failed, 2 killed, 1 survived, 1 not compiling\n", buf.String())
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	t.Run("table sorted by bug", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		require.NoError(t, ui.DisplayReports(context.Background(), sampleReports()))

		got := buf.String()
		first := strings.Index(got, "Math-1")
		second := strings.Index(got, "Math-2")
		require.GreaterOrEqual(t, first, 0)
		require.GreaterOrEqual(t, second, 0)
		assert.Less(t, first, second)
		assert.Contains(t, got, "66.7%")
		assert.Contains(t, got, "0.0%")
		assert.Contains(t, got, "50.0%")
	})

	t.Run("empty", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		require.NoError(t, ui.DisplayReports(context.Background(), nil))
		assert.Equal(t, "No reports found\n", buf.String())
	})
}

func TestSimpleUI_DisplayMutationScore(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayMutationScore(context.Background(), 62.5)

	assert.Equal(t, "Mutation score: 62.50%\n", buf.String())
}

func TestSimpleUI_DisplayCheck(t *testing.T) {
	tests := []struct {
		name string
		run  m.OracleRun
		err  error
		want string
	}{
		{name: "ok", run: m.OracleRun{Duration: 1500 * time.Millisecond}, want: "oracle: ok (1.5s)"},
		{name: "non-zero exit", run: m.OracleRun{ExitCode: 2, Output: "usage: defects4j\n"}, want: "oracle: exited with code 2\nusage: defects4j"},
		{name: "missing", err: errors.New("executable file not found"), want: "oracle: unavailable (executable file not found)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestSimpleUI()

			ui.DisplayCheck(context.Background(), tt.run, tt.err)

			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestReportStats_Score(t *testing.T) {
	assert.InDelta(t, 100.0, reportStats{}.score(), 1e-9)
	assert.InDelta(t, 100.0, reportStats{uncompiled: 3}.score(), 1e-9)
	assert.InDelta(t, 25.0, reportStats{killed: 1, survived: 3}.score(), 1e-9)
}
