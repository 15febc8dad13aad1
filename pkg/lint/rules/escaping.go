package rules

import (
	"strings"

	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/docstring"
	"github.com/yaklabco/gopep257/pkg/lint"
)

// BackslashRule suggests raw strings for multiline docs with escaped backslashes.
type BackslashRule struct {
	lint.BaseRule
}

// NewBackslashRule creates a new backslash-escaping rule.
func NewBackslashRule() *BackslashRule {
	return &BackslashRule{
		BaseRule: lint.NewBaseRule(
			"D301",
			"backslash-escaping",
			"Use raw strings for docstrings with backslashes",
			[]string{"quoting"},
			config.SeverityWarning,
		),
	}
}

// Apply looks for a doubled backslash in multiline content.
func (r *BackslashRule) Apply(doc *docstring.Docstring) []lint.Violation {
	if doc.IsBlank() || !doc.Multiline || !strings.Contains(doc.Content, `\\`) {
		return nil
	}

	return []lint.Violation{
		r.Violation(doc, "Consider using raw strings for docstrings with backslashes").Build(),
	}
}
