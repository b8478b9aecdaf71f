package domain

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gooze.dev/pkg/mutforge/internal/adapter"
	m "gooze.dev/pkg/mutforge/internal/model"
)

const workspacePrefix = "temp_mutant_"

// DefaultCloneExcludes are base-name patterns never copied into a workspace.
var DefaultCloneExcludes = []string{".git", MutationLogFileName, "*.tar.gz"}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// IsolationConfig configures workspace placement and reclamation.
type IsolationConfig struct {
	Root      m.Path
	Excludes  []string
	KillGrace time.Duration
}

// Isolation hands out private project copies and reclaims them.
type Isolation interface {
	// Allocate names a fresh workspace directory; nothing is created yet.
	Allocate(c m.Combination) m.Workspace
	// Clone replaces dst with a copy of src.
	Clone(ctx context.Context, src, dst m.Path) error
	// Reclaim kills every process referencing path and removes it.
	Reclaim(ctx context.Context, path m.Path) error
}

type isolation struct {
	fsAdapter adapter.SourceFSAdapter
	reaper    adapter.ProcessReaper
	cfg       IsolationConfig
	newID     func() string
}

// NewIsolation constructs an Isolation manager rooted at cfg.Root.
func NewIsolation(fsAdapter adapter.SourceFSAdapter, reaper adapter.ProcessReaper, cfg IsolationConfig) Isolation {
	if cfg.Excludes == nil {
		cfg.Excludes = DefaultCloneExcludes
	}

	return &isolation{
		fsAdapter: fsAdapter,
		reaper:    reaper,
		cfg:       cfg,
		newID: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")
		},
	}
}

func (i *isolation) Allocate(c m.Combination) m.Workspace {
	name := workspacePrefix + strings.Join([]string{
		safeName(c.Identity.Project),
		safeName(c.Identity.Bug),
		safeName(c.ID),
		i.newID(),
	}, "_")

	return m.Workspace{
		Path:          i.fsAdapter.JoinPath(context.Background(), string(i.cfg.Root), name),
		CombinationID: c.ID,
	}
}

func safeName(s string) string {
	return unsafeNameChars.ReplaceAllString(s, "_")
}

func (i *isolation) Clone(ctx context.Context, src, dst m.Path) error {
	if err := i.fsAdapter.RemoveAll(ctx, dst); err != nil {
		return fmt.Errorf("clear %s: %w", dst, err)
	}

	if err := i.fsAdapter.MkdirAll(ctx, i.cfg.Root); err != nil {
		return fmt.Errorf("create workspace root: %w", err)
	}

	if err := i.fsAdapter.CopyDir(ctx, src, dst, i.cfg.Excludes); err != nil {
		slog.Error("Failed to clone project", "src", src, "dst", dst, "error", err)
		return fmt.Errorf("clone %s: %w", src, err)
	}

	return nil
}

// Reclaim ignores cancellation of ctx so that timed-out tasks are still
// cleaned up.
func (i *isolation) Reclaim(ctx context.Context, path m.Path) error {
	if path == "" {
		return nil
	}

	ctx = context.WithoutCancel(ctx)

	i.sweep(ctx, path)

	err := i.fsAdapter.RemoveAll(ctx, path)
	if err == nil {
		return nil
	}

	slog.Warn("workspace removal failed, retrying", "path", path, "error", err)

	i.sweep(ctx, path)

	if err := i.fsAdapter.RemoveAll(ctx, path); err != nil {
		slog.Error("Failed to remove workspace", "path", path, "error", err)
		return fmt.Errorf("remove workspace %s: %w", path, err)
	}

	return nil
}

func (i *isolation) sweep(ctx context.Context, path m.Path) {
	killed, err := i.reaper.KillReferencing(ctx, string(path), i.cfg.KillGrace)
	if err != nil {
		slog.Warn("process sweep failed", "path", path, "error", err)
		return
	}

	if killed > 0 {
		slog.Info("terminated orphaned processes", "path", path, "count", killed)
	}
}
