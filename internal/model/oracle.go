package model

import "time"

// OracleMode selects which oracle operation to invoke.
type OracleMode string

const (
	// OracleCheckout materialises a clean project version.
	OracleCheckout OracleMode = "checkout"
	// OracleCompile builds the project.
	OracleCompile OracleMode = "compile"
	// OracleMutation produces the mutation log.
	OracleMutation OracleMode = "mutation"
	// OracleTest runs the test suite.
	OracleTest OracleMode = "test"
	// OracleCoverage runs the test suite under coverage.
	OracleCoverage OracleMode = "coverage"
	// OracleInfo prints project information; used as an environment check.
	OracleInfo OracleMode = "info"
)

// OracleInvocation describes a single oracle call.
type OracleInvocation struct {
	Mode     OracleMode
	Dir      Path
	Identity Identity
	// Target is substituted for {target}; checkout uses it as the destination.
	Target Path
}

// OracleRun is the outcome of a single oracle call.
type OracleRun struct {
	Mode     OracleMode
	ExitCode int
	Output   string
	TimedOut bool
	Duration time.Duration
}

// Succeeded reports whether the oracle exited cleanly.
func (r OracleRun) Succeeded() bool {
	return !r.TimedOut && r.ExitCode == 0
}
