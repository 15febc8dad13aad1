package pretty

import (
	"fmt"

	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/lint"
)

// FormatViolation renders one violation as
// "<file>:<line>:<column> <severity> [<rule>]: <message>" plus a newline.
func (s *Styles) FormatViolation(path string, v lint.Violation) string {
	return fmt.Sprintf("%s%s %s %s: %s\n",
		s.FilePath.Render(path),
		s.Location.Render(fmt.Sprintf(":%d:%d", v.Line, v.Column)),
		s.FormatSeverity(v.Severity),
		s.RuleID.Render("["+v.Rule+"]"),
		s.Message.Render(v.Message),
	)
}

// FormatFileError renders a file that could not be linted.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s\n",
		s.FilePath.Render(path),
		s.Error.Render(fmt.Sprintf("error: %v", err)),
	)
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}
