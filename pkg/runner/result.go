package runner

import "github.com/hiracky16/sqlfluff/pkg/lint"

// FileOutcome pairs a processed path with its lint result.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the lint result for this file.
	// May be nil if the file encountered an error during processing.
	Result *lint.FileResult

	// Skipped is true when the file was discovered but not linted
	// (e.g. binary content).
	Skipped bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int `json:"files_discovered"`

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int `json:"files_processed"`

	// FilesSkipped is the number of files skipped (e.g. binary content).
	FilesSkipped int `json:"files_skipped"`

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int `json:"files_errored"`

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int `json:"files_with_issues"`

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int `json:"diagnostics_total"`

	// DiagnosticsApproximate is the number of diagnostics whose source
	// position is a best-effort region rather than an exact match.
	DiagnosticsApproximate int `json:"diagnostics_approximate"`

	// DiagnosticsBySeverity maps severity levels to counts.
	DiagnosticsBySeverity map[string]int `json:"diagnostics_by_severity"`
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any diagnostics with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsBySeverity["error"] > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	diagCount := len(outcome.Result.Diagnostics)
	r.Stats.DiagnosticsTotal += diagCount
	r.Stats.DiagnosticsApproximate += outcome.Result.ApproximateCount()

	if diagCount > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, diag := range outcome.Result.Diagnostics {
		severity := string(diag.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.DiagnosticsBySeverity[severity]++
	}
}
