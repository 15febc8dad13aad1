package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/docstring"
)

// mockRule reports one violation per docstring whose content matches.
type mockRule struct {
	BaseRule
	match string
	codes []string
}

func newMockRule(id, name string) *mockRule {
	return &mockRule{BaseRule: NewBaseRule(id, name, "mock", nil, config.SeverityWarning)}
}

func (m *mockRule) Apply(doc *docstring.Docstring) []Violation {
	if m.match != "" && doc.Content != m.match {
		return nil
	}
	return []Violation{m.Violation(doc, m.Name()).Build()}
}

type mockMultiRule struct {
	*mockRule
}

func (m mockMultiRule) Codes() []string { return m.codes }

func TestRegistry_SortsByID(t *testing.T) {
	reg, err := NewRegistry(newMockRule("D300", "c"), newMockRule("D100", "a"), newMockRule("D200", "b"))
	require.NoError(t, err)

	assert.Equal(t, []string{"D100", "D200", "D300"}, reg.IDs())
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(newMockRule("D100", "a"), newMockRule("D100", "b"))
	require.Error(t, err)

	_, err = NewRegistry(newMockRule("D100", "a"), newMockRule("D200", "a"))
	require.Error(t, err)

	assert.Panics(t, func() { MustNewRegistry(newMockRule("D100", "a"), newMockRule("D100", "a")) })
}

func TestRegistry_Get(t *testing.T) {
	multi := mockMultiRule{newMockRule("D100", "missing")}
	multi.codes = []string{"D101", "D103"}
	reg := MustNewRegistry(multi, newMockRule("D400", "period"))

	tests := []struct {
		key    string
		wantID string
		wantOK bool
	}{
		{"D400", "D400", true},
		{"period", "D400", true},
		{"missing", "D100", true},
		{"D103", "D100", true},
		{"D999", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			rule, ok := reg.Get(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, rule.ID())
			}
		})
	}
}

func TestCodes(t *testing.T) {
	multi := mockMultiRule{newMockRule("D100", "missing")}
	multi.codes = []string{"D101", "D103"}

	assert.Equal(t, []string{"D101", "D103"}, Codes(multi))
	assert.Equal(t, []string{"D400"}, Codes(newMockRule("D400", "period")))
}

func TestRegistry_RulesIsCopy(t *testing.T) {
	reg := MustNewRegistry(newMockRule("D100", "a"))
	rules := reg.Rules()
	rules[0] = nil

	assert.NotNil(t, reg.Rules()[0])
}
