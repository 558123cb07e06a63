package cli

import "github.com/hiracky16/sqlfluff/pkg/runner"

// Exit codes for sqlfluff.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint found error-severity issues (or any
	// issues in strict mode).
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint found only warning- or
	// info-severity issues.
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict
// mode. Any diagnostic fails the run; severity and strict mode only
// decide between the error and warning exit classes.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil || !result.HasIssues() {
		return ExitSuccess
	}

	if result.Stats.DiagnosticsBySeverity["error"] > 0 || strict {
		return ExitLintErrors
	}

	return ExitLintWarnings
}
