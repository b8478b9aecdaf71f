package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	m "gooze.dev/pkg/mutforge/internal/model"
)

const (
	defaultOracleExecutable = "defects4j"
	defaultOracleTimeout    = 720 * time.Second
	defaultKillGrace        = 5 * time.Second
)

// OracleAdapter abstracts the external build/test/coverage tool.
type OracleAdapter interface {
	// Run invokes the oracle in the given mode. A non-zero exit code or a mode
	// timeout is reported in the returned OracleRun; err is only set when the
	// oracle could not be started or the caller's context ended.
	Run(ctx context.Context, inv m.OracleInvocation) (m.OracleRun, error)
}

// OracleConfig configures how the oracle executable is invoked. Argument
// templates may contain {project}, {bug}, {dir} and {target}.
type OracleConfig struct {
	Executable     string
	Args           map[m.OracleMode][]string
	Timeouts       map[m.OracleMode]time.Duration
	DefaultTimeout time.Duration
	KillGrace      time.Duration
	Env            []string
}

// DefaultOracleConfig returns the Defects4J command line.
func DefaultOracleConfig() OracleConfig {
	return OracleConfig{
		Executable: defaultOracleExecutable,
		Args: map[m.OracleMode][]string{
			m.OracleCheckout: {"checkout", "-p", "{project}", "-v", "{bug}f", "-w", "{target}"},
			m.OracleCompile:  {"compile"},
			m.OracleMutation: {"mutation"},
			m.OracleTest:     {"test"},
			m.OracleCoverage: {"coverage", "-r"},
			m.OracleInfo:     {"info", "-p", "{project}"},
		},
		Timeouts:       map[m.OracleMode]time.Duration{},
		DefaultTimeout: defaultOracleTimeout,
		KillGrace:      defaultKillGrace,
	}
}

// LocalOracleAdapter runs the oracle as a subprocess in its own process group.
type LocalOracleAdapter struct {
	cfg    OracleConfig
	reaper ProcessReaper
}

// NewLocalOracleAdapter constructs a LocalOracleAdapter. Zero values in cfg
// fall back to DefaultOracleConfig.
func NewLocalOracleAdapter(cfg OracleConfig, reaper ProcessReaper) *LocalOracleAdapter {
	def := DefaultOracleConfig()

	if cfg.Executable == "" {
		cfg.Executable = def.Executable
	}

	if cfg.Args == nil {
		cfg.Args = def.Args
	}

	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = def.DefaultTimeout
	}

	if cfg.KillGrace <= 0 {
		cfg.KillGrace = def.KillGrace
	}

	return &LocalOracleAdapter{cfg: cfg, reaper: reaper}
}

// Run executes one oracle mode and always sweeps its process group afterwards.
func (a *LocalOracleAdapter) Run(ctx context.Context, inv m.OracleInvocation) (m.OracleRun, error) {
	run := m.OracleRun{Mode: inv.Mode, ExitCode: -1}

	args, err := a.ExpandArgs(inv)
	if err != nil {
		return run, err
	}

	runCtx, cancel := context.WithTimeout(ctx, a.timeoutFor(inv.Mode))
	defer cancel()

	cmd := exec.CommandContext(runCtx, a.cfg.Executable, args...)
	cmd.Dir = string(inv.Dir)
	cmd.WaitDelay = a.cfg.KillGrace

	if len(a.cfg.Env) > 0 {
		cmd.Env = append(cmd.Environ(), a.cfg.Env...)
	}

	startInOwnGroup(cmd)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("invoking oracle", "mode", inv.Mode, "dir", inv.Dir, "args", args)

	start := time.Now()
	runErr := cmd.Run()
	run.Duration = time.Since(start)
	run.Output = stdout.String() + stderr.String()

	if cmd.Process != nil {
		if err := a.reaper.KillGroup(context.WithoutCancel(ctx), cmd.Process.Pid, a.cfg.KillGrace); err != nil {
			slog.Warn("failed to sweep oracle process group", "mode", inv.Mode, "pid", cmd.Process.Pid, "error", err)
		}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		slog.Debug("oracle interrupted", "mode", inv.Mode, "dir", inv.Dir, "error", ctxErr)
		return run, fmt.Errorf("oracle %s interrupted: %w", inv.Mode, ctxErr)
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		slog.Warn("oracle timed out", "mode", inv.Mode, "dir", inv.Dir, "duration", run.Duration)

		run.TimedOut = true

		return run, nil
	}

	var exitErr *exec.ExitError

	switch {
	case runErr == nil, errors.Is(runErr, exec.ErrWaitDelay):
		run.ExitCode = 0
	case errors.As(runErr, &exitErr):
		run.ExitCode = exitErr.ExitCode()
	default:
		slog.Error("failed to start oracle", "mode", inv.Mode, "executable", a.cfg.Executable, "error", runErr)
		return run, fmt.Errorf("run oracle %s: %w", inv.Mode, runErr)
	}

	slog.Debug("oracle finished", "mode", inv.Mode, "exit", run.ExitCode, "duration", run.Duration)

	return run, nil
}

// ExpandArgs substitutes the invocation into the mode's argument template.
func (a *LocalOracleAdapter) ExpandArgs(inv m.OracleInvocation) ([]string, error) {
	tmpl, ok := a.cfg.Args[inv.Mode]
	if !ok {
		return nil, fmt.Errorf("no oracle arguments configured for mode %q", inv.Mode)
	}

	replacer := strings.NewReplacer(
		"{project}", inv.Identity.Project,
		"{bug}", inv.Identity.Bug,
		"{dir}", string(inv.Dir),
		"{target}", string(inv.Target),
	)

	out := make([]string, 0, len(tmpl))
	for _, arg := range tmpl {
		out = append(out, replacer.Replace(arg))
	}

	return out, nil
}

func (a *LocalOracleAdapter) timeoutFor(mode m.OracleMode) time.Duration {
	if d, ok := a.cfg.Timeouts[mode]; ok && d > 0 {
		return d
	}

	return a.cfg.DefaultTimeout
}
