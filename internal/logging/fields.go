// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldConfig     = "config"
	FieldWorkingDir = "working_dir"

	// Run settings.
	FieldFormat      = "format"
	FieldJobs        = "jobs"
	FieldWarnings    = "warnings"
	FieldStrict      = "strict_period"
	FieldRecursive   = "recursive"
	FieldPunctuation = "summary_punctuation"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesSkipped    = "files_skipped"
	FieldFilesWithIssues = "files_with_issues"
	FieldFilesFailed     = "files_failed"
	FieldDocstrings      = "docstrings"
	FieldViolations      = "violations"
	FieldDuration        = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldRule     = "rule"
	FieldSeverity = "severity"
)
