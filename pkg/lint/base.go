package lint

import (
	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/docstring"
)

// BaseRule provides the metadata half of the Rule interface.
// Embed it in rule implementations and override Apply.
type BaseRule struct {
	id       string
	name     string
	desc     string
	tags     []string
	severity config.Severity
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string, severity config.Severity) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		tags:     tags,
		severity: severity,
	}
}

// ID returns the rule code.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultSeverity returns the severity of violations this rule reports.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return r.severity
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Apply must be overridden by concrete rule implementations.
func (r *BaseRule) Apply(_ *docstring.Docstring) []Violation {
	return nil
}

// Violation starts a violation of this rule at the docstring's position.
func (r *BaseRule) Violation(doc *docstring.Docstring, message string) *ViolationBuilder {
	return NewViolation(r.id, doc, message).WithSeverity(r.severity)
}
