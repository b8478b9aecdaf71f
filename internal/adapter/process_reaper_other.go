//go:build !unix

package adapter

import (
	"context"
	"os/exec"
	"time"
)

// KillGroup is a no-op where process groups are not available; the leader
// is killed by exec.CommandContext.
func (r *LocalProcessReaper) KillGroup(_ context.Context, _ int, _ time.Duration) error {
	return nil
}

func startInOwnGroup(_ *exec.Cmd) {}
