// Package controller provides output adapters for displaying mutation
// combination runs.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "gooze.dev/pkg/mutforge/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModePlan StartMode = iota
	ModeRun
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithPlanMode sets the UI to combination planning mode.
func WithPlanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlan
	}
}

// WithRunMode sets the UI to execution mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithViewMode sets the UI to report browsing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func startConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRun}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying plans, progress and reports.
// Implementations can use different output methods (simple text, TUI, etc).
// The task notifications are called from worker goroutines.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayPlan(ctx context.Context, id m.Identity, totalRecords int, result m.GenerationResult) error
	DisplayRunInfo(ctx context.Context, id m.Identity, planned int, workers int)
	TaskStarted(slot int, c m.Combination)
	TaskStateChanged(slot int, combinationID string, state m.TaskState)
	TaskFinished(slot int, combinationID string, state m.TaskState)
	DisplayBugSummary(ctx context.Context, report m.BugReport)
	DisplayReports(ctx context.Context, reports []m.BugReport) error
	DisplayMutationScore(ctx context.Context, score float64)
	DisplayCheck(ctx context.Context, run m.OracleRun, err error)
}

// NewUI picks the TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
