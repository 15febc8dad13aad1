package lint

import (
	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/docstring"
)

// ViolationBuilder helps construct Violation values.
type ViolationBuilder struct {
	v Violation
}

// NewViolation starts building a violation positioned at the docstring.
func NewViolation(rule string, doc *docstring.Docstring, message string) *ViolationBuilder {
	builder := &ViolationBuilder{
		v: Violation{
			Rule:     rule,
			Message:  message,
			Severity: config.SeverityError,
		},
	}
	if doc != nil {
		builder.v.Line = doc.Line
		builder.v.Column = doc.Column
	}
	return builder
}

// At overrides the position.
func (b *ViolationBuilder) At(line, column int) *ViolationBuilder {
	b.v.Line = line
	b.v.Column = column
	return b
}

// AtLine moves the violation to a line, keeping the column.
func (b *ViolationBuilder) AtLine(line int) *ViolationBuilder {
	b.v.Line = line
	return b
}

// WithSeverity sets the severity.
func (b *ViolationBuilder) WithSeverity(severity config.Severity) *ViolationBuilder {
	b.v.Severity = severity
	return b
}

// Build returns the violation.
func (b *ViolationBuilder) Build() Violation {
	return b.v
}
