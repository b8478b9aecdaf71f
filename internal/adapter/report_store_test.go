package adapter

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutforge/internal/model"
)

func sampleBugReport(bug string) m.BugReport {
	id := m.Identity{Project: "Math", Bug: bug}
	records := []m.MutationRecord{
		{ID: "1", Mutator: "LVR", ClassKey: "org.example.Dist", Line: 47, OriginalCode: "false", MutatedCode: "true"},
		{ID: "2", Mutator: "ROR", ClassKey: "org.example.Dist", Line: 52, OriginalCode: "a < b", MutatedCode: "a <= b"},
	}

	return m.BugReport{
		Identity:     id,
		Timestamp:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		TotalRecords: 10,
		Requested:    2,
		Shortfall:    1,
		Results: []m.ExecutionResult{{
			CombinationID:  "mutant_1",
			Identity:       id,
			Signature:      "org.example.Dist:47:LVR|org.example.Dist:52:ROR",
			GenerationSeed: 11,
			WorkerSeed:     22,
			Records:        records,
			Mutators:       []string{"LVR", "ROR"},
			TargetFiles:    []m.Path{"src/main/java/org/example/Dist.java"},
			PatchSuccess:   true,
			CompileSuccess: true,
			OracleSuccess:  true,
			Tests:          m.TestCounts{Total: 3, Failed: 1},
			FailedTests:    []string{"org.example.DistTest::testCompute"},
			AllTests:       []string{"testCompute", "testZero", "testOne"},
			Coverage:       map[string]float64{m.MetricLineCoverage: 75, m.MetricBranchCoverage: 50},
			MethodCoverage: map[string][]int{"org.example.Dist.compute(I)I": {47, 52}},
			Duration:       1500 * time.Millisecond,
		}},
		Failures: []m.TaskFailure{{CombinationID: "mutant_2", State: m.StateTimedOut, Reason: "task deadline exceeded", TimedOut: true}},
	}
}

func TestJSONReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(t.TempDir())
	ctx := context.Background()

	path, err := store.SaveReport(ctx, dir, sampleBugReport("4"))
	require.NoError(t, err)
	assert.Equal(t, BugReportPath(dir, m.Identity{Project: "Math", Bug: "4"}), path)
	assert.FileExists(t, string(path))

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	mutants := decoded["mutants"].([]any)
	require.Len(t, mutants, 1)
	first := mutants[0].(map[string]any)
	assert.Equal(t, "LVR, ROR", first["mutator"])
	assert.Equal(t, "org.example.Dist", first["class_name"])
	assert.Equal(t, "src/main/java/org/example/Dist.java", first["target_file"])

	loaded, err := store.LoadReports(ctx, dir, "Math")
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	if diff := cmp.Diff(sampleBugReport("4"), loaded[0]); diff != "" {
		t.Errorf("report round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONReportStore_LoadReports_OrdersBugs(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(t.TempDir())
	ctx := context.Background()

	for _, bug := range []string{"10", "2", "1"} {
		_, err := store.SaveReport(ctx, dir, sampleBugReport(bug))
		require.NoError(t, err)
	}

	other := sampleBugReport("1")
	other.Identity.Project = "Lang"
	_, err := store.SaveReport(ctx, dir, other)
	require.NoError(t, err)

	loaded, err := store.LoadReports(ctx, dir, "Math")
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "1", loaded[0].Identity.Bug)
	assert.Equal(t, "2", loaded[1].Identity.Bug)
	assert.Equal(t, "10", loaded[2].Identity.Bug)
}

func TestJSONReportStore_LoadReports_MissingDir(t *testing.T) {
	store := NewReportStore()

	loaded, err := store.LoadReports(context.Background(), m.Path(t.TempDir()+"/absent"), "Math")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestJSONReportStore_MergeProject(t *testing.T) {
	store := NewReportStore()
	store.now = func() time.Time { return time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC) }
	dir := m.Path(t.TempDir())
	ctx := context.Background()

	for _, bug := range []string{"1", "2"} {
		_, err := store.SaveReport(ctx, dir, sampleBugReport(bug))
		require.NoError(t, err)
	}

	path, err := store.MergeProject(ctx, dir, "Math")
	require.NoError(t, err)
	assert.Equal(t, MergedReportPath(dir, "Math"), path)

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)

	var merged mergedReportFile
	require.NoError(t, json.Unmarshal(raw, &merged))
	assert.Equal(t, "Math", merged.Metadata.Project)
	assert.Equal(t, 2, merged.Metadata.TotalBugs)
	assert.Equal(t, 2, merged.Metadata.TotalMutants)
	assert.Equal(t, []string{"1", "2"}, merged.Metadata.BugsProcessed)
	assert.Contains(t, merged.Bugs, "1")
	assert.Contains(t, merged.Bugs, "2")
}

func TestJSONReportStore_MergeProject_NoReports(t *testing.T) {
	store := NewReportStore()

	_, err := store.MergeProject(context.Background(), m.Path(t.TempDir()), "Math")
	require.Error(t, err)
}
