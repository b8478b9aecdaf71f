//go:build unix

package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// KillGroup signals the whole process group pgid.
func (r *LocalProcessReaper) KillGroup(ctx context.Context, pgid int, grace time.Duration) error {
	if pgid <= 0 {
		return nil
	}

	if err := unix.Kill(-pgid, unix.SIGTERM); err != nil {
		if errors.Is(err, unix.ESRCH) {
			return nil
		}

		return fmt.Errorf("sigterm group %d: %w", pgid, err)
	}

	gone := waitUntil(ctx, grace, func() bool {
		return errors.Is(unix.Kill(-pgid, 0), unix.ESRCH)
	})
	if gone {
		return nil
	}

	slog.Debug("process group survived sigterm", "pgid", pgid)

	if err := unix.Kill(-pgid, unix.SIGKILL); err != nil && !errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("sigkill group %d: %w", pgid, err)
	}

	return nil
}

// startInOwnGroup puts the command in a new process group and makes context
// cancellation terminate the whole group instead of the leader only.
func startInOwnGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}

		err := unix.Kill(-cmd.Process.Pid, unix.SIGTERM)
		if errors.Is(err, unix.ESRCH) {
			return nil
		}

		return err
	}
}
