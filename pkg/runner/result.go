package runner

import (
	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/lint"
)

// FileOutcome is what happened to one discovered file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result holds the lint result. Nil when the file was skipped or failed.
	Result *lint.FileResult

	// Skipped is set for files passed over as generated.
	Skipped bool

	// Error is set if the file could not be read or parsed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files linted successfully.
	FilesProcessed int

	// FilesSkipped is the number of files skipped as generated.
	FilesSkipped int

	// FilesErrored is the number of files that could not be linted.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one violation.
	FilesWithIssues int

	// Docstrings is the number of docstrings checked.
	Docstrings int

	// ViolationsTotal is the total number of violations across all files.
	ViolationsTotal int

	// ViolationsBySeverity maps severity levels to counts.
	ViolationsBySeverity map[config.Severity]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each discovered file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any violation with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsBySeverity[config.SeverityError] > 0
}

// HasIssues reports whether any violations were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsTotal > 0
}

// HasErrors reports whether any file could not be linted.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		ViolationsBySeverity: make(map[config.Severity]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.Skipped:
		r.Stats.FilesSkipped++
		return
	case outcome.Result == nil:
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Docstrings += outcome.Result.Docstrings
	r.Stats.ViolationsTotal += outcome.Result.IssueCount()

	if outcome.Result.HasIssues() {
		r.Stats.FilesWithIssues++
	}

	for _, v := range outcome.Result.Violations {
		r.Stats.ViolationsBySeverity[v.Severity]++
	}
}
