package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/mutforge/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex

	planned  int
	finished int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayPlan prints the generated combinations as a table.
func (s *SimpleUI) DisplayPlan(ctx context.Context, id m.Identity, totalRecords int, result m.GenerationResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Combinations for %s (%d mutation records)\n", id, totalRecords)
	s.printf("\n%s", renderPlanTable(result))

	if result.Shortfall > 0 {
		s.printf("Shortfall: %d combination(s) could not be generated\n", result.Shortfall)
	}

	return nil
}

func renderPlanTable(result m.GenerationResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Mutant", "Mutators", "Locations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, c := range result.Combinations {
		table.Append([]string{c.ID, strings.Join(c.Mutators(), "+"), locations(c.Records)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(result.Combinations)),
		"",
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func locations(records []m.MutationRecord) string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, fmt.Sprintf("%s:%d", shortClass(r.ClassKey), r.Line))
	}

	return strings.Join(out, ", ")
}

func shortClass(classKey string) string {
	if idx := strings.LastIndex(classKey, "."); idx >= 0 {
		return classKey[idx+1:]
	}

	return classKey
}

// DisplayRunInfo shows how many combinations run for a bug and with how many workers.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, id m.Identity, planned int, workers int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	s.planned = planned
	s.finished = 0
	s.mu.Unlock()

	s.printf("Running %d combination(s) for %s with %d worker(s)\n", planned, id, workers)
}

// TaskStarted prints a line when a worker picks up a combination.
func (s *SimpleUI) TaskStarted(slot int, c m.Combination) {
	s.printf("[worker %d] %s started (%s)\n", slot, c.ID, strings.Join(c.Mutators(), "+"))
}

// TaskStateChanged is silent; SimpleUI only reports start and finish.
func (s *SimpleUI) TaskStateChanged(int, string, m.TaskState) {}

// TaskFinished prints the final state with a running count.
func (s *SimpleUI) TaskFinished(slot int, combinationID string, state m.TaskState) {
	s.mu.Lock()
	s.finished++
	finished, planned := s.finished, s.planned
	s.mu.Unlock()

	s.printf("[worker %d] %s %s (%d/%d)\n", slot, combinationID, state, finished, planned)
}

// DisplayBugSummary prints the outcome counts of a finished bug.
func (s *SimpleUI) DisplayBugSummary(ctx context.Context, report m.BugReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	st := summarize(report)
	s.printf("%s: %d processed, %d failed, %d killed, %d survived, %d not compiling\n",
		report.Identity, len(report.Results), len(report.Failures), st.killed, st.survived, st.uncompiled)
}

// DisplayReports prints one table row per stored bug report.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.BugReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	s.printf("\n%s", renderReportsTable(reports))

	return nil
}

func renderReportsTable(reports []m.BugReport) string {
	sorted := append([]m.BugReport(nil), reports...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Identity.String() < sorted[j].Identity.String()
	})

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Bug", "Mutants", "Failed", "Killed", "Survived", "Score"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
	})

	var total reportStats

	for _, r := range sorted {
		st := summarize(r)
		total.add(st)

		table.Append([]string{
			r.Identity.String(),
			fmt.Sprintf("%d", len(r.Results)),
			fmt.Sprintf("%d", len(r.Failures)),
			fmt.Sprintf("%d", st.killed),
			fmt.Sprintf("%d", st.survived),
			fmt.Sprintf("%.1f%%", st.score()),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Bugs %d", len(sorted)),
		fmt.Sprintf("%d", total.results),
		fmt.Sprintf("%d", total.failures),
		fmt.Sprintf("%d", total.killed),
		fmt.Sprintf("%d", total.survived),
		fmt.Sprintf("%.1f%%", total.score()),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayMutationScore prints the final mutation score.
func (s *SimpleUI) DisplayMutationScore(ctx context.Context, score float64) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Mutation score: %.2f%%\n", score)
}

// DisplayCheck prints the oracle probe outcome.
func (s *SimpleUI) DisplayCheck(ctx context.Context, run m.OracleRun, err error) {
	if ctx.Err() != nil {
		return
	}

	switch {
	case err != nil:
		s.printf("oracle: unavailable (%v)\n", err)
	case !run.Succeeded():
		s.printf("oracle: exited with code %d\n%s\n", run.ExitCode, strings.TrimSpace(run.Output))
	default:
		s.printf("oracle: ok (%s)\n", run.Duration.Round(time.Millisecond))
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

type reportStats struct {
	results    int
	failures   int
	killed     int
	survived   int
	uncompiled int
}

func summarize(report m.BugReport) reportStats {
	st := reportStats{results: len(report.Results), failures: len(report.Failures)}

	for _, r := range report.Results {
		switch {
		case !r.CompileSuccess:
			st.uncompiled++
		case r.Killed():
			st.killed++
		default:
			st.survived++
		}
	}

	return st
}

func (st *reportStats) add(other reportStats) {
	st.results += other.results
	st.failures += other.failures
	st.killed += other.killed
	st.survived += other.survived
	st.uncompiled += other.uncompiled
}

// score is killed over compiled combinations; 100 when nothing compiled.
func (st reportStats) score() float64 {
	compiled := st.killed + st.survived
	if compiled == 0 {
		return 100
	}

	return float64(st.killed) / float64(compiled) * 100
}
