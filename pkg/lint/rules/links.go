package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/docstring"
	"github.com/yaklabco/gopep257/pkg/lint"
	"github.com/yaklabco/gopep257/pkg/lint/markdown"
)

// CodeReferenceRule wants code-like intra-doc link text wrapped in backticks.
type CodeReferenceRule struct {
	lint.BaseRule
	looksLikeCode func(string) bool
}

// NewCodeReferenceRule creates a new code-reference-backticks rule.
func NewCodeReferenceRule(looksLikeCode func(string) bool) *CodeReferenceRule {
	return &CodeReferenceRule{
		BaseRule: lint.NewBaseRule(
			"D405",
			"code-reference-backticks",
			"Markdown link text that names code should be wrapped in backticks",
			[]string{"links", "markdown"},
			config.SeverityWarning,
		),
		looksLikeCode: looksLikeCode,
	}
}

// Apply reports each code-like span at its opening bracket.
func (r *CodeReferenceRule) Apply(doc *docstring.Docstring) []lint.Violation {
	if doc.IsBlank() {
		return nil
	}

	var violations []lint.Violation
	for _, span := range markdown.Scan(doc.Content, doc.Line, doc.Column) {
		if span.HasBackticks() || !r.looksLikeCode(span.Text) {
			continue
		}

		text := strings.TrimSpace(span.Text)
		violations = append(violations,
			r.Violation(doc, fmt.Sprintf(
				"Markdown link text looks like code but lacks backticks: [%s] should be [`%s`]", text, text)).
				At(span.Line, span.Column).
				Build())
	}
	return violations
}

// CommonTypeRule wants well-known std types written as inline code rather
// than linked.
type CommonTypeRule struct {
	lint.BaseRule
	isCommonType func(string) bool
}

// NewCommonTypeRule creates a new common-type-backticks rule.
func NewCommonTypeRule(isCommonType func(string) bool) *CommonTypeRule {
	return &CommonTypeRule{
		BaseRule: lint.NewBaseRule(
			"D406",
			"common-type-backticks",
			"Common Rust types should use inline code instead of links",
			[]string{"links", "markdown"},
			config.SeverityWarning,
		),
		isCommonType: isCommonType,
	}
}

// Apply reports each linked common type at its opening bracket.
func (r *CommonTypeRule) Apply(doc *docstring.Docstring) []lint.Violation {
	if doc.IsBlank() {
		return nil
	}

	var violations []lint.Violation
	for _, span := range markdown.Scan(doc.Content, doc.Line, doc.Column) {
		if span.HasBackticks() || !r.isCommonType(span.Text) {
			continue
		}

		text := strings.TrimSpace(span.Text)
		shown := "[" + text + "]"
		if span.Kind != markdown.Standalone {
			shown += "(...)"
		}
		violations = append(violations,
			r.Violation(doc, fmt.Sprintf("Use inline code for common Rust type: %s should be `%s`", shown, text)).
				At(span.Line, span.Column).
				Build())
	}
	return violations
}
