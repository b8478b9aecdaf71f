package model

import "time"

// TaskState is a step of the per-combination execution state machine.
type TaskState string

// Task states, in the order a successful task passes through them.
const (
	StateQueued         TaskState = "queued"
	StateCloning        TaskState = "cloning"
	StatePatching       TaskState = "patching"
	StateInvokingOracle TaskState = "invoking-oracle"
	StateCollecting     TaskState = "collecting"
	StateDone           TaskState = "done"
	StateFailed         TaskState = "failed"
	StateTimedOut       TaskState = "timed-out"
)

// Coverage metric keys stored in ExecutionResult.Coverage.
const (
	MetricLineCoverage   = "line_coverage_percentage"
	MetricBranchCoverage = "branch_coverage_percentage"
	MetricLinesTotal     = "lines_total"
	MetricLinesCovered   = "lines_covered"
	MetricLineRate       = "line_rate"
	MetricBranchRate     = "branch_rate"
)

// TestCounts summarises a test run.
type TestCounts struct {
	Total  int `json:"total_tests_count"`
	Failed int `json:"failed_test_count"`
}

// CoverageReport is the parsed content of a coverage artifact.
type CoverageReport struct {
	LinesTotal      int
	LinesCovered    int
	BranchesTotal   int
	BranchesCovered int
	// LineRate and BranchRate are the report's root aggregates in [0,1].
	LineRate   float64
	BranchRate float64
	// Methods maps "Class.method(signature)" to the line numbers it spans.
	Methods map[string][]int
}

// LinePercentage returns covered/total lines as a percentage. Without line
// counts it falls back to the root line rate.
func (c CoverageReport) LinePercentage() float64 {
	if c.LinesTotal == 0 {
		return c.LineRate * 100
	}

	return percentage(c.LinesCovered, c.LinesTotal)
}

// BranchPercentage returns covered/total branches as a percentage, falling
// back to the root branch rate.
func (c CoverageReport) BranchPercentage() float64 {
	if c.BranchesTotal == 0 {
		return c.BranchRate * 100
	}

	return percentage(c.BranchesCovered, c.BranchesTotal)
}

// Metrics flattens the report into the ExecutionResult coverage map.
func (c CoverageReport) Metrics() map[string]float64 {
	return map[string]float64{
		MetricLineCoverage:   c.LinePercentage(),
		MetricBranchCoverage: c.BranchPercentage(),
		MetricLinesTotal:     float64(c.LinesTotal),
		MetricLinesCovered:   float64(c.LinesCovered),
		MetricLineRate:       c.LineRate,
		MetricBranchRate:     c.BranchRate,
	}
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}

// ExecutionResult is the outcome of one combination that ran to completion.
type ExecutionResult struct {
	CombinationID  string             `json:"mutant_id"`
	Identity       Identity           `json:"identity"`
	Signature      string             `json:"mutation_signature"`
	GenerationSeed uint64             `json:"generation_seed"`
	WorkerSeed     uint64             `json:"worker_seed"`
	Records        []MutationRecord   `json:"mutations"`
	Mutators       []string           `json:"mutators"`
	TargetFiles    []Path             `json:"target_files"`
	PatchSuccess   bool               `json:"patch_success"`
	CompileSuccess bool               `json:"compile_success"`
	OracleSuccess  bool               `json:"coverage_success"`
	OracleOutput   string             `json:"oracle_output,omitempty"`
	Tests          TestCounts         `json:"tests"`
	FailedTests    []string           `json:"failed_tests"`
	AllTests       []string           `json:"all_tests"`
	Coverage       map[string]float64 `json:"coverage"`
	MethodCoverage map[string][]int   `json:"method_coverage"`
	TimedOut       bool               `json:"timed_out"`
	Duration       time.Duration      `json:"duration"`
}

// Killed reports whether at least one test failed under the combination.
func (r ExecutionResult) Killed() bool {
	return r.Tests.Failed > 0
}

// TaskFailure records a combination that produced no result.
type TaskFailure struct {
	CombinationID string    `json:"mutant_id"`
	State         TaskState `json:"state"`
	Reason        string    `json:"reason"`
	TimedOut      bool      `json:"timed_out"`
}

// BugReport aggregates everything produced for one project/bug pair.
type BugReport struct {
	Identity     Identity          `json:"identity"`
	Timestamp    time.Time         `json:"timestamp"`
	TotalRecords int               `json:"total_records"`
	Requested    int               `json:"requested"`
	Shortfall    int               `json:"shortfall"`
	Results      []ExecutionResult `json:"results"`
	Failures     []TaskFailure     `json:"failures"`
}
