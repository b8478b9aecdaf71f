package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"gooze.dev/pkg/mutforge/internal/adapter"
	m "gooze.dev/pkg/mutforge/internal/model"
)

// Patch errors.
var (
	ErrLineOutOfRange = errors.New("line out of range")
	ErrPatchMismatch  = errors.New("original code not found on line")
)

// Patcher applies mutation records to source files as plain text.
type Patcher interface {
	// ApplyOne replaces original with mutated on the 1-based line of path.
	ApplyOne(ctx context.Context, path m.Path, line int, original, mutated string) error
	// ApplyMany applies every record or none of them.
	ApplyMany(ctx context.Context, path m.Path, records []m.MutationRecord) error
}

type textPatcher struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewPatcher constructs a Patcher that reads and writes through fsAdapter.
func NewPatcher(fsAdapter adapter.SourceFSAdapter) Patcher {
	return &textPatcher{fsAdapter: fsAdapter}
}

func (p *textPatcher) ApplyOne(ctx context.Context, path m.Path, line int, original, mutated string) error {
	return p.ApplyMany(ctx, path, []m.MutationRecord{{Line: line, OriginalCode: original, MutatedCode: mutated}})
}

func (p *textPatcher) ApplyMany(ctx context.Context, path m.Path, records []m.MutationRecord) error {
	if len(records) == 0 {
		return nil
	}

	content, err := p.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read patch target", "path", path, "error", err)
		return fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.SplitAfter(string(content), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	// descending line order
	ordered := slices.Clone(records)
	slices.SortStableFunc(ordered, func(a, b m.MutationRecord) int { return b.Line - a.Line })

	for _, r := range ordered {
		patched, err := replaceOnLine(lines, r.Line, r.OriginalCode, r.MutatedCode)
		if err != nil {
			slog.Warn("patch rejected", "path", path, "line", r.Line, "mutator", r.Mutator, "error", err)
			return fmt.Errorf("patch %s:%d: %w", path, r.Line, err)
		}

		lines[r.Line-1] = patched
	}

	if err := p.fsAdapter.WriteFileAtomic(ctx, path, []byte(strings.Join(lines, ""))); err != nil {
		slog.Error("Failed to write patched file", "path", path, "error", err)
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// replaceOnLine substitutes the first occurrence of original on the line,
// falling back to its whitespace-trimmed form. Both paths insert mutated
// verbatim and keep the line terminator.
func replaceOnLine(lines []string, line int, original, mutated string) (string, error) {
	if line < 1 || line > len(lines) {
		return "", fmt.Errorf("%w: %d not in [1,%d]", ErrLineOutOfRange, line, len(lines))
	}

	raw := lines[line-1]
	body, eol := splitEOL(raw)

	trimmed := strings.TrimSpace(original)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty original", ErrPatchMismatch)
	}

	if idx := strings.Index(body, original); idx >= 0 {
		return body[:idx] + mutated + body[idx+len(original):] + eol, nil
	}

	if idx := strings.Index(body, trimmed); idx >= 0 {
		return body[:idx] + mutated + body[idx+len(trimmed):] + eol, nil
	}

	return "", fmt.Errorf("%w: %q", ErrPatchMismatch, trimmed)
}

func splitEOL(line string) (string, string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}
