package pretty

import (
	"fmt"
	"strings"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// Tally is what a summary line reports. Counts cover only the violations
// that were shown.
type Tally struct {
	FilesChecked    int
	FilesWithIssues int
	FilesFailed     int
	Errors          int
	Warnings        int

	// HiddenWarnings were found but filtered out of the output.
	HiddenWarnings int
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 violations (3 errors, 2 warnings) in 2 files".
func (s *Styles) FormatSummaryOneLine(t Tally) string {
	var parts []string

	total := t.Errors + t.Warnings
	if total == 0 {
		parts = append(parts, s.Success.Render("No violations found")+
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", t.FilesChecked, plural(t.FilesChecked, wordFile, wordFiles))))
	} else {
		var severityParts []string
		if t.Errors > 0 {
			severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", t.Errors, plural(t.Errors, "error", "errors"))))
		}
		if t.Warnings > 0 {
			severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", t.Warnings, plural(t.Warnings, "warning", "warnings"))))
		}
		parts = append(parts, fmt.Sprintf("%d %s (%s) in %d %s",
			total, plural(total, "violation", "violations"),
			strings.Join(severityParts, ", "),
			t.FilesWithIssues, plural(t.FilesWithIssues, wordFile, wordFiles)))
	}

	if t.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed", t.FilesFailed, plural(t.FilesFailed, wordFile, wordFiles))))
	}
	if t.HiddenWarnings > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d %s hidden (use --warnings)",
			t.HiddenWarnings, plural(t.HiddenWarnings, "warning", "warnings"))))
	}

	return strings.Join(parts, ", ") + "\n"
}
