package lint

import "github.com/yaklabco/gopep257/pkg/docstring"

// Checker evaluates a registry's rules against docstrings.
// It holds no mutable state and may be shared between goroutines.
type Checker struct {
	rules []Rule
}

// NewChecker creates a checker over the registry's rules.
func NewChecker(registry *Registry) *Checker {
	return &Checker{rules: registry.Rules()}
}

// Check runs every rule against doc in order and concatenates the results.
func (c *Checker) Check(doc *docstring.Docstring) []Violation {
	var violations []Violation
	for _, rule := range c.rules {
		violations = append(violations, rule.Apply(doc)...)
	}
	return violations
}

// CheckAll checks each docstring in order.
func (c *Checker) CheckAll(docs []docstring.Docstring) []Violation {
	var violations []Violation
	for i := range docs {
		violations = append(violations, c.Check(&docs[i])...)
	}
	return violations
}
