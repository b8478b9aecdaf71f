package adapter

import (
	"bufio"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	m "gooze.dev/pkg/mutforge/internal/model"
)

// Well-known artifact names the oracle leaves in the working directory.
const (
	FailingTestsFile = "failing_tests"
	AllTestsFile     = "all_tests"
	CoverageFile     = "coverage.xml"

	// FailingTestPrefix marks a test header line in the failing tests file.
	FailingTestPrefix = "--- "
)

// ArtifactReader reads the files an oracle run leaves behind. Missing files
// are not errors: they mean "nothing reported".
type ArtifactReader interface {
	// ReadTestList returns non-empty lines. With a non-empty prefix only lines
	// carrying it are kept, with the prefix stripped.
	ReadTestList(ctx context.Context, path m.Path, prefix string) ([]string, error)
	// ReadCoverage parses a Cobertura-style coverage report.
	ReadCoverage(ctx context.Context, path m.Path) (m.CoverageReport, error)
}

// LocalArtifactReader reads artifacts from the local filesystem.
type LocalArtifactReader struct{}

// NewLocalArtifactReader constructs a LocalArtifactReader.
func NewLocalArtifactReader() *LocalArtifactReader {
	return &LocalArtifactReader{}
}

// ReadTestList implements ArtifactReader.
func (r *LocalArtifactReader) ReadTestList(_ context.Context, path m.Path, prefix string) ([]string, error) {
	f, err := os.Open(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	defer func() { _ = f.Close() }()

	tests := []string{}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if prefix != "" {
			rest, ok := strings.CutPrefix(line, strings.TrimSpace(prefix))
			if !ok {
				continue
			}

			line = strings.TrimSpace(rest)
		}

		if line != "" {
			tests = append(tests, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return tests, nil
}

// ReadCoverage implements ArtifactReader. Only lines nested in a method are
// counted so the class-level duplicate line list is ignored. When no method
// lines exist the root aggregates of <coverage> are used instead.
func (r *LocalArtifactReader) ReadCoverage(_ context.Context, path m.Path) (m.CoverageReport, error) {
	report := m.CoverageReport{Methods: map[string][]int{}}

	f, err := os.Open(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return report, nil
	}

	if err != nil {
		return report, fmt.Errorf("open %s: %w", path, err)
	}

	defer func() { _ = f.Close() }()

	if err := parseCoverage(f, &report); err != nil {
		return m.CoverageReport{Methods: map[string][]int{}}, fmt.Errorf("parse %s: %w", path, err)
	}

	return report, nil
}

func parseCoverage(r io.Reader, report *m.CoverageReport) error {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false

	var (
		className string
		method    string
		inMethod  bool
		root      rootCoverage
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "coverage":
				root = readRootCoverage(el)
			case "class":
				className = attr(el, "name")
			case "method":
				method = className + "." + attr(el, "name") + attr(el, "signature")
				inMethod = true

				if _, ok := report.Methods[method]; !ok {
					report.Methods[method] = []int{}
				}
			case "line":
				if inMethod {
					countLine(el, method, report)
				}
			}
		case xml.EndElement:
			if el.Name.Local == "method" {
				inMethod = false
			}
		}
	}

	for name := range report.Methods {
		sort.Ints(report.Methods[name])
	}

	root.apply(report)

	return nil
}

// rootCoverage holds the aggregate attributes of the <coverage> element.
type rootCoverage struct {
	lineRate        float64
	branchRate      float64
	linesCovered    int
	linesValid      int
	branchesCovered int
	branchesValid   int
}

func readRootCoverage(el xml.StartElement) rootCoverage {
	return rootCoverage{
		lineRate:        floatAttr(el, "line-rate"),
		branchRate:      floatAttr(el, "branch-rate"),
		linesCovered:    intAttr(el, "lines-covered"),
		linesValid:      intAttr(el, "lines-valid"),
		branchesCovered: intAttr(el, "branches-covered"),
		branchesValid:   intAttr(el, "branches-valid"),
	}
}

// apply records the rates and fills counts the method lines left empty.
func (rc rootCoverage) apply(report *m.CoverageReport) {
	report.LineRate = rc.lineRate
	report.BranchRate = rc.branchRate

	if report.LinesTotal == 0 && rc.linesValid > 0 {
		report.LinesTotal = rc.linesValid
		report.LinesCovered = rc.linesCovered
	}

	if report.BranchesTotal == 0 && rc.branchesValid > 0 {
		report.BranchesTotal = rc.branchesValid
		report.BranchesCovered = rc.branchesCovered
	}
}

func floatAttr(el xml.StartElement, name string) float64 {
	v, err := strconv.ParseFloat(attr(el, name), 64)
	if err != nil {
		return 0
	}

	return v
}

func intAttr(el xml.StartElement, name string) int {
	v, err := strconv.Atoi(attr(el, name))
	if err != nil {
		return 0
	}

	return v
}

func countLine(el xml.StartElement, method string, report *m.CoverageReport) {
	if n, err := strconv.Atoi(attr(el, "number")); err == nil {
		report.Methods[method] = append(report.Methods[method], n)
	}

	report.LinesTotal++

	if attr(el, "hits") != "0" {
		report.LinesCovered++
	}

	if attr(el, "branch") != "true" {
		return
	}

	covered, total, ok := parseConditionCoverage(attr(el, "condition-coverage"))
	if ok {
		report.BranchesCovered += covered
		report.BranchesTotal += total
	}
}

// parseConditionCoverage reads "50% (1/2)".
func parseConditionCoverage(s string) (int, int, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return 0, 0, false
	}

	var covered, total int
	if _, err := fmt.Sscanf(s[open:], "(%d/%d)", &covered, &total); err != nil {
		return 0, 0, false
	}

	return covered, total, true
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}
