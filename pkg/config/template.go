package config

import (
	"bytes"
	"fmt"
	"strings"
)

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Severity    Severity
}

// DefaultHeader is written at the top of generated configuration files.
const DefaultHeader = `# pep257 configuration
# Checks Rust documentation comments for PEP 257 style problems.`

// GenerateTemplate renders the default configuration with every rule listed
// in a trailing comment block. The rule set is fixed; the list is for reference.
func GenerateTemplate(rules []RuleInfo) ([]byte, error) {
	body, err := NewConfig().ToYAMLWithHeader(DefaultHeader)
	if err != nil {
		return nil, err
	}

	if len(rules) == 0 {
		return body, nil
	}

	var buf bytes.Buffer
	buf.Write(body)
	buf.WriteString("\n# Rules:\n")

	width := 0
	for _, rule := range rules {
		width = max(width, len(rule.ID))
	}
	for _, rule := range rules {
		fmt.Fprintf(&buf, "#   %-*s  %-7s  %s\n", width, rule.ID, rule.Severity, strings.TrimSpace(rule.Description))
	}

	return buf.Bytes(), nil
}
