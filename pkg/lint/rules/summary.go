package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/docstring"
	"github.com/yaklabco/gopep257/pkg/lint"
	"github.com/yaklabco/gopep257/pkg/lint/markdown"
	"github.com/yaklabco/gopep257/pkg/lint/mood"
)

// SummaryPunctuationRule requires the summary line to end a sentence.
type SummaryPunctuationRule struct {
	lint.BaseRule
	strict bool
}

// NewSummaryPunctuationRule creates a new summary-punctuation rule. In strict
// mode only '.' is accepted; otherwise '!' and '?' are too.
func NewSummaryPunctuationRule(strict bool) *SummaryPunctuationRule {
	return &SummaryPunctuationRule{
		BaseRule: lint.NewBaseRule(
			"D400",
			"summary-punctuation",
			"First line should end with a period",
			[]string{"summary"},
			config.SeverityError,
		),
		strict: strict,
	}
}

// Apply checks the last character of the first non-empty line.
func (r *SummaryPunctuationRule) Apply(doc *docstring.Docstring) []lint.Violation {
	summary, idx := doc.Summary()
	if idx < 0 || endsWithAny(summary, terminalPunctuation(r.strict)) {
		return nil
	}

	return []lint.Violation{
		r.Violation(doc, "First line should end with a period").Build(),
	}
}

// ImperativeMoodRule asks for summaries phrased as commands ("Return", not "Returns").
type ImperativeMoodRule struct {
	lint.BaseRule
	classifier *mood.Classifier
}

// NewImperativeMoodRule creates a new imperative-mood rule.
func NewImperativeMoodRule(classifier *mood.Classifier) *ImperativeMoodRule {
	return &ImperativeMoodRule{
		BaseRule: lint.NewBaseRule(
			"D401",
			"imperative-mood",
			"First line should be in imperative mood",
			[]string{"summary", "grammar"},
			config.SeverityWarning,
		),
		classifier: classifier,
	}
}

// nonImperativeOpeners catch common openers the classifier has no opinion on.
//
//nolint:gochecknoglobals // read-only lookup table
var nonImperativeOpeners = map[string]bool{
	"this": true, "the": true, "a": true, "an": true,
	"returns": true, "gets": true, "creates": true, "makes": true, "builds": true,
}

// Apply classifies the first word of the summary.
func (r *ImperativeMoodRule) Apply(doc *docstring.Docstring) []lint.Violation {
	summary, idx := doc.Summary()
	if idx < 0 {
		return nil
	}

	word := mood.Normalize(strings.Fields(summary)[0])
	if word == "" {
		return nil
	}

	switch r.classifier.Classify(word) {
	case mood.Imperative:
		return nil
	case mood.Undecided:
		if !nonImperativeOpeners[word] {
			return nil
		}
	}

	return []lint.Violation{
		r.Violation(doc, "First line should be in imperative mood").Build(),
	}
}

// NoSignatureRule rejects function summaries that restate the signature.
type NoSignatureRule struct {
	lint.BaseRule
	looksLikeSignature func(string) bool
}

// NewNoSignatureRule creates a new no-signature rule.
func NewNoSignatureRule(looksLikeSignature func(string) bool) *NoSignatureRule {
	return &NoSignatureRule{
		BaseRule: lint.NewBaseRule(
			"D402",
			"no-signature",
			"First line should not be the function's signature",
			[]string{"summary"},
			config.SeverityError,
		),
		looksLikeSignature: looksLikeSignature,
	}
}

// Apply strips markdown links first so "[foo](bar)" is not mistaken for a call.
func (r *NoSignatureRule) Apply(doc *docstring.Docstring) []lint.Violation {
	if doc.Target != docstring.KindFunction {
		return nil
	}
	summary, idx := doc.Summary()
	if idx < 0 || !r.looksLikeSignature(markdown.StripLinks(summary)) {
		return nil
	}

	return []lint.Violation{
		r.Violation(doc, "First line should not be the function's signature").Build(),
	}
}

// CapitalizedSummaryRule requires the summary to start with an uppercase letter.
type CapitalizedSummaryRule struct {
	lint.BaseRule
}

// NewCapitalizedSummaryRule creates a new capitalized-summary rule.
func NewCapitalizedSummaryRule() *CapitalizedSummaryRule {
	return &CapitalizedSummaryRule{
		BaseRule: lint.NewBaseRule(
			"D403",
			"capitalized-summary",
			"First word of the first line should be properly capitalized",
			[]string{"summary"},
			config.SeverityError,
		),
	}
}

// Apply checks the first rune of the first word.
func (r *CapitalizedSummaryRule) Apply(doc *docstring.Docstring) []lint.Violation {
	summary, idx := doc.Summary()
	if idx < 0 {
		return nil
	}

	first, _ := utf8.DecodeRuneInString(summary)
	if unicode.IsUpper(first) {
		return nil
	}

	return []lint.Violation{
		r.Violation(doc, "First word of the first line should be properly capitalized").Build(),
	}
}
