// Package lint provides the rule engine, violations, and registry for pep257.
package lint

import (
	"fmt"

	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/docstring"
)

// Violation is a single style problem found in a docstring.
type Violation struct {
	// Rule is the rule code (e.g., "D400").
	Rule string

	// Message is the human-readable description of the issue.
	Message string

	// Line is the 1-based line of the problem.
	Line int

	// Column is the 1-based column of the problem.
	Column int

	Severity config.Severity
}

// String renders the violation as "<line>:<column> <severity> [<rule>]: <message>".
func (v Violation) String() string {
	return fmt.Sprintf("%d:%d %s [%s]: %s", v.Line, v.Column, v.Severity, v.Rule, v.Message)
}

// IsWarning reports whether the violation is hidden by default.
func (v Violation) IsWarning() bool {
	return v.Severity == config.SeverityWarning
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the rule code (e.g., "D400").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns what the rule checks.
	Description() string

	// DefaultSeverity returns the severity of violations this rule reports.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule.
	Tags() []string

	// Apply inspects one docstring. Rules are pure: they check their own
	// preconditions and return nil when they do not apply.
	Apply(doc *docstring.Docstring) []Violation
}

// MultiCodeRule is implemented by rules that report under more than one code.
type MultiCodeRule interface {
	Rule

	// Codes returns every code the rule can report.
	Codes() []string
}
