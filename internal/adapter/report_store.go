package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	m "gooze.dev/pkg/mutforge/internal/model"
)

const (
	bugReportSuffix    = "_mutant_coverage.json"
	mergedReportSuffix = "_All_Bugs_Merged.json"
)

// ReportStore persists per-bug reports and merges them per project.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.BugReport) (m.Path, error)
	LoadReports(ctx context.Context, dir m.Path, project string) ([]m.BugReport, error)
	MergeProject(ctx context.Context, dir m.Path, project string) (m.Path, error)
}

type reportMetadata struct {
	Project          string    `json:"project"`
	BugID            string    `json:"bug_id"`
	Timestamp        time.Time `json:"timestamp"`
	TotalRecords     int       `json:"total_records"`
	Requested        int       `json:"requested_mutants"`
	Shortfall        int       `json:"shortfall"`
	TotalMutants     int       `json:"total_mutants"`
	MutantsProcessed int       `json:"mutants_processed"`
	MutantsFailed    int       `json:"mutants_failed"`
}

type coverageEntry struct {
	LineCoveragePercentage   float64 `json:"line_coverage_percentage"`
	BranchCoveragePercentage float64 `json:"branch_coverage_percentage"`
	TotalTestsCount          int     `json:"total_tests_count"`
	FailedTestCount          int     `json:"failed_test_count"`
	CoverageSuccess          bool    `json:"coverage_success"`
}

type testsEntry struct {
	FailedTests []string `json:"failed_tests"`
	AllTests    []string `json:"all_tests"`
}

type mutantEntry struct {
	MutantID          string             `json:"mutant_id"`
	Mutator           string             `json:"mutator"`
	ClassName         string             `json:"class_name"`
	LineNumber        int                `json:"line_number"`
	TargetFile        string             `json:"target_file"`
	TargetFiles       []m.Path           `json:"target_files"`
	NumMutations      int                `json:"num_mutations"`
	MutationSignature string             `json:"mutation_signature"`
	GenerationSeed    uint64             `json:"generation_seed"`
	WorkerSeed        uint64             `json:"worker_seed"`
	Mutations         []m.MutationRecord `json:"mutations"`
	PatchSuccess      bool               `json:"patch_success"`
	CompileSuccess    bool               `json:"compile_success"`
	TimedOut          bool               `json:"timed_out"`
	DurationSeconds   float64            `json:"duration_seconds"`
	Metrics           map[string]float64 `json:"metrics"`
	Coverage          coverageEntry      `json:"coverage"`
	Tests             testsEntry         `json:"tests"`
	MethodCoverage    map[string][]int   `json:"method_coverage"`
}

type bugReportFile struct {
	Metadata reportMetadata  `json:"metadata"`
	Mutants  []mutantEntry   `json:"mutants"`
	Failures []m.TaskFailure `json:"failures"`
}

type mergedMetadata struct {
	Project       string    `json:"project"`
	Timestamp     time.Time `json:"timestamp"`
	TotalBugs     int       `json:"total_bugs"`
	BugsProcessed []string  `json:"bugs_processed"`
	TotalMutants  int       `json:"total_mutants"`
}

type mergedReportFile struct {
	Metadata mergedMetadata           `json:"metadata"`
	Bugs     map[string]bugReportFile `json:"bugs"`
}

// JSONReportStore stores reports as indented JSON files.
type JSONReportStore struct {
	now func() time.Time
}

// NewReportStore constructs a JSONReportStore.
func NewReportStore() *JSONReportStore {
	return &JSONReportStore{now: time.Now}
}

// BugReportPath returns where the report for id lives under dir.
func BugReportPath(dir m.Path, id m.Identity) m.Path {
	stem := id.Project + "_" + id.Bug

	return m.Path(filepath.Join(string(dir), stem+"_mutants", stem+bugReportSuffix))
}

// MergedReportPath returns where the merged report for project lives under dir.
func MergedReportPath(dir m.Path, project string) m.Path {
	return m.Path(filepath.Join(string(dir), project+mergedReportSuffix))
}

// SaveReport writes one bug report.
func (s *JSONReportStore) SaveReport(_ context.Context, dir m.Path, report m.BugReport) (m.Path, error) {
	path := BugReportPath(dir, report.Identity)

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		slog.Error("failed to create report dir", "path", path, "error", err)
		return "", fmt.Errorf("create report dir: %w", err)
	}

	if err := writeJSON(path, toReportFile(report)); err != nil {
		slog.Error("failed to write report", "path", path, "error", err)
		return "", err
	}

	slog.Info("saved bug report", "path", path, "results", len(report.Results), "failures", len(report.Failures))

	return path, nil
}

// LoadReports reads every bug report of project under dir, ordered by bug.
func (s *JSONReportStore) LoadReports(ctx context.Context, dir m.Path, project string) ([]m.BugReport, error) {
	files, err := s.findReports(ctx, dir, project)
	if err != nil {
		return nil, err
	}

	reports := make([]m.BugReport, 0, len(files))

	for _, path := range files {
		file, err := readReportFile(path)
		if err != nil {
			slog.Warn("skipping unreadable report", "path", path, "error", err)
			continue
		}

		reports = append(reports, fromReportFile(file))
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return lessBug(reports[i].Identity.Bug, reports[j].Identity.Bug)
	})

	return reports, nil
}

// MergeProject combines every bug report of project into one file.
func (s *JSONReportStore) MergeProject(ctx context.Context, dir m.Path, project string) (m.Path, error) {
	reports, err := s.LoadReports(ctx, dir, project)
	if err != nil {
		return "", err
	}

	if len(reports) == 0 {
		return "", fmt.Errorf("no reports found for project %s in %s", project, dir)
	}

	merged := mergedReportFile{
		Metadata: mergedMetadata{
			Project:       project,
			Timestamp:     s.now(),
			TotalBugs:     len(reports),
			BugsProcessed: make([]string, 0, len(reports)),
		},
		Bugs: make(map[string]bugReportFile, len(reports)),
	}

	for _, report := range reports {
		merged.Bugs[report.Identity.Bug] = toReportFile(report)
		merged.Metadata.BugsProcessed = append(merged.Metadata.BugsProcessed, report.Identity.Bug)
		merged.Metadata.TotalMutants += len(report.Results)
	}

	path := MergedReportPath(dir, project)
	if err := writeJSON(path, merged); err != nil {
		return "", err
	}

	slog.Info("merged project reports", "project", project, "bugs", len(reports), "path", path)

	return path, nil
}

func (s *JSONReportStore) findReports(ctx context.Context, dir m.Path, project string) ([]string, error) {
	prefix := project + "_"

	var files []string

	err := filepath.WalkDir(string(dir), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		name := d.Name()
		if !d.IsDir() && strings.HasPrefix(name, prefix) && strings.HasSuffix(name, bugReportSuffix) {
			files = append(files, path)
		}

		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("scan reports in %s: %w", dir, err)
	}

	return files, nil
}

func writeJSON(path m.Path, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := atomic.WriteFile(string(path), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func readReportFile(path string) (bugReportFile, error) {
	var file bugReportFile

	// #nosec G304 - path comes from a walk of the reports directory
	data, err := os.ReadFile(path)
	if err != nil {
		return file, err
	}

	if err := json.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("decode %s: %w", path, err)
	}

	return file, nil
}

func toReportFile(report m.BugReport) bugReportFile {
	file := bugReportFile{
		Metadata: reportMetadata{
			Project:          report.Identity.Project,
			BugID:            report.Identity.Bug,
			Timestamp:        report.Timestamp,
			TotalRecords:     report.TotalRecords,
			Requested:        report.Requested,
			Shortfall:        report.Shortfall,
			TotalMutants:     len(report.Results),
			MutantsProcessed: len(report.Results),
			MutantsFailed:    len(report.Failures),
		},
		Mutants:  make([]mutantEntry, 0, len(report.Results)),
		Failures: report.Failures,
	}

	if file.Failures == nil {
		file.Failures = []m.TaskFailure{}
	}

	for _, r := range report.Results {
		file.Mutants = append(file.Mutants, toMutantEntry(r))
	}

	return file
}

func toMutantEntry(r m.ExecutionResult) mutantEntry {
	entry := mutantEntry{
		MutantID:          r.CombinationID,
		Mutator:           strings.Join(r.Mutators, ", "),
		TargetFiles:       r.TargetFiles,
		NumMutations:      len(r.Records),
		MutationSignature: r.Signature,
		GenerationSeed:    r.GenerationSeed,
		WorkerSeed:        r.WorkerSeed,
		Mutations:         r.Records,
		PatchSuccess:      r.PatchSuccess,
		CompileSuccess:    r.CompileSuccess,
		TimedOut:          r.TimedOut,
		DurationSeconds:   r.Duration.Seconds(),
		Metrics:           r.Coverage,
		Coverage: coverageEntry{
			LineCoveragePercentage:   r.Coverage[m.MetricLineCoverage],
			BranchCoveragePercentage: r.Coverage[m.MetricBranchCoverage],
			TotalTestsCount:          r.Tests.Total,
			FailedTestCount:          r.Tests.Failed,
			CoverageSuccess:          r.OracleSuccess,
		},
		Tests:          testsEntry{FailedTests: r.FailedTests, AllTests: r.AllTests},
		MethodCoverage: r.MethodCoverage,
	}

	if len(r.Records) > 0 {
		entry.ClassName = r.Records[0].ClassKey
		entry.LineNumber = r.Records[0].Line
	}

	if len(r.TargetFiles) > 0 {
		entry.TargetFile = string(r.TargetFiles[0])
	}

	return entry
}

func fromReportFile(file bugReportFile) m.BugReport {
	id := m.Identity{Project: file.Metadata.Project, Bug: file.Metadata.BugID}

	report := m.BugReport{
		Identity:     id,
		Timestamp:    file.Metadata.Timestamp,
		TotalRecords: file.Metadata.TotalRecords,
		Requested:    file.Metadata.Requested,
		Shortfall:    file.Metadata.Shortfall,
		Results:      make([]m.ExecutionResult, 0, len(file.Mutants)),
		Failures:     file.Failures,
	}

	for _, e := range file.Mutants {
		report.Results = append(report.Results, m.ExecutionResult{
			CombinationID:  e.MutantID,
			Identity:       id,
			Signature:      e.MutationSignature,
			GenerationSeed: e.GenerationSeed,
			WorkerSeed:     e.WorkerSeed,
			Records:        e.Mutations,
			Mutators:       splitMutators(e.Mutator),
			TargetFiles:    e.TargetFiles,
			PatchSuccess:   e.PatchSuccess,
			CompileSuccess: e.CompileSuccess,
			OracleSuccess:  e.Coverage.CoverageSuccess,
			Tests:          m.TestCounts{Total: e.Coverage.TotalTestsCount, Failed: e.Coverage.FailedTestCount},
			FailedTests:    e.Tests.FailedTests,
			AllTests:       e.Tests.AllTests,
			Coverage:       e.Metrics,
			MethodCoverage: e.MethodCoverage,
			TimedOut:       e.TimedOut,
			Duration:       time.Duration(e.DurationSeconds * float64(time.Second)),
		})
	}

	return report
}

func splitMutators(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, ", ")
}

// lessBug orders numeric bug ids numerically and everything else lexically.
func lessBug(a, b string) bool {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)

	if errA == nil && errB == nil && x != y {
		return x < y
	}

	return a < b
}
