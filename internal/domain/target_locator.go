package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"gooze.dev/pkg/mutforge/internal/adapter"
	m "gooze.dev/pkg/mutforge/internal/model"
)

// DefaultSourceExtension is appended to class paths when none is configured.
const DefaultSourceExtension = ".java"

// DefaultSourceRoots lists the directories searched for source files.
var DefaultSourceRoots = []string{"src", "src/main/java", "src/java", "source", "Source"}

var nestedSourcePrefixes = []string{"src/main/java", "src/java"}

// TargetLocator maps a record's class key to the file that defines it.
type TargetLocator interface {
	// Locate returns "" without error when no file matches.
	Locate(ctx context.Context, workspace m.Path, classKey string) (m.Path, error)
}

type targetLocator struct {
	fsAdapter adapter.SourceFSAdapter
	roots     []string
	extension string
}

// NewTargetLocator constructs a TargetLocator. Empty roots or extension fall
// back to DefaultSourceRoots and DefaultSourceExtension.
func NewTargetLocator(fsAdapter adapter.SourceFSAdapter, roots []string, extension string) TargetLocator {
	if len(roots) == 0 {
		roots = DefaultSourceRoots
	}

	if extension == "" {
		extension = DefaultSourceExtension
	}

	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	return &targetLocator{fsAdapter: fsAdapter, roots: roots, extension: extension}
}

func (l *targetLocator) Locate(ctx context.Context, workspace m.Path, classKey string) (m.Path, error) {
	outer, _, _ := strings.Cut(strings.TrimSpace(classKey), "$")
	if outer == "" {
		return "", fmt.Errorf("empty class key")
	}

	relative := filepath.FromSlash(strings.ReplaceAll(outer, ".", "/")) + l.extension
	base := filepath.Base(relative)
	roots := l.existingRoots(ctx, workspace)

	for _, root := range roots {
		candidates := []m.Path{l.fsAdapter.JoinPath(ctx, string(root), relative)}
		for _, prefix := range nestedSourcePrefixes {
			candidates = append(candidates, l.fsAdapter.JoinPath(ctx, string(root), filepath.FromSlash(prefix), relative))
		}

		for _, candidate := range candidates {
			if l.isFile(ctx, candidate) {
				return candidate, nil
			}
		}
	}

	for _, root := range append(roots, workspace) {
		found, err := l.fsAdapter.FindFile(ctx, root, base)
		if err != nil {
			return "", fmt.Errorf("search %s under %s: %w", base, root, err)
		}

		if found != "" {
			slog.Debug("located target by name", "class", classKey, "path", found)
			return found, nil
		}
	}

	return "", nil
}

func (l *targetLocator) existingRoots(ctx context.Context, workspace m.Path) []m.Path {
	roots := make([]m.Path, 0, len(l.roots))

	for _, root := range l.roots {
		path := l.fsAdapter.JoinPath(ctx, string(workspace), filepath.FromSlash(root))

		if info, err := l.fsAdapter.FileInfo(ctx, path); err == nil && info.IsDir() {
			roots = append(roots, path)
		}
	}

	return roots
}

func (l *targetLocator) isFile(ctx context.Context, path m.Path) bool {
	info, err := l.fsAdapter.FileInfo(ctx, path)

	return err == nil && !info.IsDir()
}
