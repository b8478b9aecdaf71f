package adapter

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

const reapPollInterval = 50 * time.Millisecond

// ProcessReaper terminates processes left behind by oracle invocations.
type ProcessReaper interface {
	// KillGroup sends SIGTERM to the process group, waits up to grace for it
	// to disappear and sends SIGKILL to whatever is left.
	KillGroup(ctx context.Context, pgid int, grace time.Duration) error

	// KillReferencing terminates every process whose command line contains
	// needle, except the current process. It returns how many were signalled.
	KillReferencing(ctx context.Context, needle string, grace time.Duration) (int, error)
}

// LocalProcessReaper implements ProcessReaper with x/sys/unix and gopsutil.
type LocalProcessReaper struct{}

// NewLocalProcessReaper constructs a LocalProcessReaper.
func NewLocalProcessReaper() *LocalProcessReaper {
	return &LocalProcessReaper{}
}

// KillReferencing scans the process table for command lines mentioning needle.
func (r *LocalProcessReaper) KillReferencing(ctx context.Context, needle string, grace time.Duration) (int, error) {
	if strings.TrimSpace(needle) == "" {
		return 0, nil
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return 0, err
	}

	self := int32(os.Getpid())

	var matched []*process.Process

	for _, p := range procs {
		if p.Pid == self {
			continue
		}

		cmdline, err := p.CmdlineWithContext(ctx)
		if err != nil || !strings.Contains(cmdline, needle) {
			continue
		}

		if err := p.TerminateWithContext(ctx); err != nil {
			slog.Debug("terminate failed", "pid", p.Pid, "error", err)
			continue
		}

		slog.Debug("terminated orphan", "pid", p.Pid, "needle", needle)

		matched = append(matched, p)
	}

	if len(matched) == 0 {
		return 0, nil
	}

	waitUntil(ctx, grace, func() bool {
		for _, p := range matched {
			if alive(ctx, p) {
				return false
			}
		}

		return true
	})

	for _, p := range matched {
		if !alive(ctx, p) {
			continue
		}

		if err := p.KillWithContext(ctx); err != nil {
			slog.Debug("kill failed", "pid", p.Pid, "error", err)
		}
	}

	return len(matched), nil
}

// alive reports whether p still runs; zombies count as gone since they only
// wait for their parent to reap them.
func alive(ctx context.Context, p *process.Process) bool {
	running, err := p.IsRunningWithContext(ctx)
	if err != nil || !running {
		return false
	}

	status, err := p.StatusWithContext(ctx)
	if err != nil {
		return true
	}

	return !slices.Contains(status, process.Zombie)
}

// waitUntil polls done until it returns true, grace elapses or ctx ends.
func waitUntil(ctx context.Context, grace time.Duration, done func() bool) bool {
	deadline := time.NewTimer(grace)
	defer deadline.Stop()

	ticker := time.NewTicker(reapPollInterval)
	defer ticker.Stop()

	for {
		if done() {
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-deadline.C:
			return done()
		case <-ticker.C:
		}
	}
}
