// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldTemplater = "templater"
	FieldProjectID = "project_id"
	FieldDatasetID = "dataset_id"
	FieldJobs      = "jobs"

	// Statistics fields.
	FieldFilesDiscovered        = "files_discovered"
	FieldFilesProcessed         = "files_processed"
	FieldFilesWithIssues        = "files_with_issues"
	FieldDiagnosticsTotal       = "diagnostics_total"
	FieldDiagnosticsApproximate = "diagnostics_approximate"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
