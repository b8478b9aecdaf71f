package domain

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"gooze.dev/pkg/mutforge/internal/adapter"
	m "gooze.dev/pkg/mutforge/internal/model"
)

// MutationLogFileName is the name of the log the mutation tool writes.
const MutationLogFileName = "mutants.log"

const (
	mutationArrow  = "|==>"
	commentMarker  = "#"
	headerFields   = 6
	maxLogLineSize = 16 * 1024 * 1024
)

// ErrMutationLogNotFound is returned when no mutation log exists under a root.
var ErrMutationLogNotFound = errors.New("mutation log not found")

// byteOffsetField matches the optional numeric field between the line number
// and the code clause.
var byteOffsetField = regexp.MustCompile(`^\d+:`)

// MutationLog parses mutation logs into records.
type MutationLog interface {
	// ParseLine parses a single log line; ok is false for blank, comment or
	// malformed lines.
	ParseLine(line string) (record m.MutationRecord, ok bool)
	// ParseAll parses the file at path, dropping exact duplicates while
	// keeping first-occurrence order.
	ParseAll(ctx context.Context, path m.Path) ([]m.MutationRecord, error)
	// Find locates the mutation log under root.
	Find(ctx context.Context, root m.Path) (m.Path, error)
}

type mutationLog struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewMutationLog constructs a MutationLog reading files through fsAdapter.
func NewMutationLog(fsAdapter adapter.SourceFSAdapter) MutationLog {
	return &mutationLog{fsAdapter: fsAdapter}
}

// ParseLine reads "id:mutator:sig1:sig2:location:line[:offset]:original |==> mutated".
// One space on each side of the arrow belongs to the separator, so the
// spaced form "original |==> mutated" is canonical: a clause written without
// those spaces ("a|==>b", "a |==>") parses to the same record and serialises
// back in the spaced form.
func (l *mutationLog) ParseLine(line string) (m.MutationRecord, bool) {
	line = strings.TrimRight(line, "\r\n")

	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, commentMarker) {
		return m.MutationRecord{}, false
	}

	fields := strings.SplitN(line, ":", headerFields+1)
	if len(fields) != headerFields+1 {
		return m.MutationRecord{}, false
	}

	id := strings.TrimSpace(fields[0])
	mutator := strings.TrimSpace(fields[1])
	location := fields[4]

	if id == "" || mutator == "" || location == "" {
		return m.MutationRecord{}, false
	}

	lineNumber, err := strconv.Atoi(strings.TrimSpace(fields[5]))
	if err != nil || lineNumber < 1 {
		return m.MutationRecord{}, false
	}

	clause := fields[6]
	if loc := byteOffsetField.FindStringIndex(clause); loc != nil {
		clause = clause[loc[1]:]
	}

	original, mutated, found := strings.Cut(clause, mutationArrow)
	if !found {
		return m.MutationRecord{}, false
	}

	original = strings.TrimSuffix(original, " ")
	mutated = strings.TrimPrefix(mutated, " ")

	if mutated == m.NoOpMarker {
		mutated = "/*" + original + "*/"
	}

	return m.MutationRecord{
		ID:           id,
		Mutator:      mutator,
		ClassKey:     classKeyOf(location),
		Line:         lineNumber,
		OriginalCode: original,
		MutatedCode:  mutated,
	}, true
}

// classKeyOf returns the location up to the member separator.
func classKeyOf(location string) string {
	key, _, _ := strings.Cut(location, "@")

	return strings.TrimSpace(key)
}

func (l *mutationLog) ParseAll(ctx context.Context, path m.Path) ([]m.MutationRecord, error) {
	content, err := l.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read mutation log", "path", path, "error", err)
		return nil, fmt.Errorf("read mutation log: %w", err)
	}

	records, skipped, err := l.parseReader(ctx, bytes.NewReader(content))
	if err != nil {
		slog.Error("Failed to parse mutation log", "path", path, "error", err)
		return nil, fmt.Errorf("parse mutation log %s: %w", path, err)
	}

	slog.Info("parsed mutation log", "path", path, "records", len(records), "skipped", skipped)

	return records, nil
}

func (l *mutationLog) parseReader(ctx context.Context, r io.Reader) ([]m.MutationRecord, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLogLineSize)

	seen := make(map[m.MutationRecord]struct{})
	records := []m.MutationRecord{}
	skipped := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		if lineNo%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, skipped, err
			}
		}

		raw := scanner.Text()

		record, ok := l.ParseLine(raw)
		if !ok {
			if trimmed := strings.TrimSpace(raw); trimmed != "" && !strings.HasPrefix(trimmed, commentMarker) {
				skipped++

				slog.Debug("skipping malformed mutation log line", "line", lineNo)
			}

			continue
		}

		if _, dup := seen[record]; dup {
			continue
		}

		seen[record] = struct{}{}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, skipped, err
	}

	return records, skipped, nil
}

// Find returns root/mutants.log, falling back to the first mutants.log found
// deeper in the tree.
func (l *mutationLog) Find(ctx context.Context, root m.Path) (m.Path, error) {
	direct := l.fsAdapter.JoinPath(ctx, string(root), MutationLogFileName)

	if info, err := l.fsAdapter.FileInfo(ctx, direct); err == nil && !info.IsDir() {
		return direct, nil
	}

	found, err := l.fsAdapter.FindFile(ctx, root, MutationLogFileName)
	if err != nil {
		return "", fmt.Errorf("search mutation log under %s: %w", root, err)
	}

	if found == "" {
		return "", fmt.Errorf("%w under %s", ErrMutationLogNotFound, root)
	}

	return found, nil
}
