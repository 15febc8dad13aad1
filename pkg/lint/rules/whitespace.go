package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/docstring"
	"github.com/yaklabco/gopep257/pkg/lint"
)

// BlankLineBeforeRule reports documentation that opens with a blank line.
type BlankLineBeforeRule struct {
	lint.BaseRule
}

// NewBlankLineBeforeRule creates a new no-blank-line-before rule.
func NewBlankLineBeforeRule() *BlankLineBeforeRule {
	return &BlankLineBeforeRule{
		BaseRule: lint.NewBaseRule(
			"D201",
			"no-blank-line-before",
			"No blank lines allowed before the docstring text",
			[]string{"whitespace"},
			config.SeverityError,
		),
	}
}

// Apply checks for a leading newline.
func (r *BlankLineBeforeRule) Apply(doc *docstring.Docstring) []lint.Violation {
	if doc.IsBlank() || !strings.HasPrefix(doc.Content, "\n") {
		return nil
	}

	return []lint.Violation{
		r.Violation(doc, fmt.Sprintf("No blank lines allowed before %s docstring", doc.Target)).Build(),
	}
}

// BlankLineAfterRule reports documentation that ends with a blank line.
type BlankLineAfterRule struct {
	lint.BaseRule
}

// NewBlankLineAfterRule creates a new no-blank-line-after rule.
func NewBlankLineAfterRule() *BlankLineAfterRule {
	return &BlankLineAfterRule{
		BaseRule: lint.NewBaseRule(
			"D202",
			"no-blank-line-after",
			"No blank lines allowed after the docstring text",
			[]string{"whitespace"},
			config.SeverityError,
		),
	}
}

// Apply checks for a trailing newline and reports the blank line itself.
func (r *BlankLineAfterRule) Apply(doc *docstring.Docstring) []lint.Violation {
	if doc.IsBlank() || !strings.HasSuffix(doc.Content, "\n") {
		return nil
	}

	last := doc.Line + strings.Count(doc.Content, "\n")
	return []lint.Violation{
		r.Violation(doc, fmt.Sprintf("No blank lines allowed after %s docstring", doc.Target)).
			AtLine(last).
			Build(),
	}
}

// SummarySeparationRule requires a blank line between the summary and the
// description.
type SummarySeparationRule struct {
	lint.BaseRule
}

// NewSummarySeparationRule creates a new blank-line-after-summary rule.
func NewSummarySeparationRule() *SummarySeparationRule {
	return &SummarySeparationRule{
		BaseRule: lint.NewBaseRule(
			"D205",
			"blank-line-after-summary",
			"1 blank line required between summary line and description",
			[]string{"whitespace", "summary"},
			config.SeverityError,
		),
	}
}

// Apply fires when the summary runs straight into more text. With a blank
// line further down, any text between the summary and that blank line
// counts. Without one, only a summary that already ends a sentence does, so a
// single sentence wrapped over several lines is left alone.
func (r *SummarySeparationRule) Apply(doc *docstring.Docstring) []lint.Violation {
	if doc.IsBlank() {
		return nil
	}

	lines := doc.Lines()
	summary, idx := doc.Summary()
	if idx < 0 || idx+1 >= len(lines) {
		return nil
	}
	if strings.TrimSpace(lines[idx+1]) == "" {
		return nil
	}
	if !hasBlankLine(lines[idx+1:]) && !endsWithAny(summary, terminalPunctuation(false)) {
		return nil
	}

	return []lint.Violation{
		r.Violation(doc, "1 blank line required between summary line and description").
			AtLine(doc.Line + idx + 1).
			Build(),
	}
}

func hasBlankLine(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			return true
		}
	}
	return false
}
