package rules

import (
	"fmt"
	"slices"

	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/docstring"
	"github.com/yaklabco/gopep257/pkg/lint"
)

// MissingDocsRule reports public declarations without documentation. The
// reported code depends on the declaration kind.
type MissingDocsRule struct {
	lint.BaseRule
}

// NewMissingDocsRule creates a new missing-docs rule.
func NewMissingDocsRule() *MissingDocsRule {
	return &MissingDocsRule{
		BaseRule: lint.NewBaseRule(
			"D100",
			"missing-docs",
			"Public declarations have documentation",
			[]string{"presence"},
			config.SeverityError,
		),
	}
}

// Codes returns every code this rule reports, sorted, one per declaration kind group.
func (r *MissingDocsRule) Codes() []string {
	seen := make(map[string]bool)
	var codes []string
	for _, kind := range docstring.Kinds() {
		code := kind.MissingDocCode()
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	return codes
}

// Apply fires once for a public declaration with blank documentation.
func (r *MissingDocsRule) Apply(doc *docstring.Docstring) []lint.Violation {
	if !doc.Public || !doc.IsBlank() {
		return nil
	}

	return []lint.Violation{
		lint.NewViolation(doc.Target.MissingDocCode(), doc,
			fmt.Sprintf("Missing docstring in public %s", doc.Target)).
			WithSeverity(r.DefaultSeverity()).
			Build(),
	}
}
