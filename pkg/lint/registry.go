package lint

import (
	"cmp"
	"fmt"
	"slices"
)

// Registry is a fixed set of rules, indexed by ID, name, and reported code.
// It is built once and never modified, so it is safe for concurrent use.
type Registry struct {
	rules  []Rule
	byID   map[string]Rule
	byName map[string]Rule
	byCode map[string]Rule
}

// NewRegistry builds a registry. Rules run in ID order regardless of the
// order given. Duplicate IDs or names are an error.
func NewRegistry(rules ...Rule) (*Registry, error) {
	reg := &Registry{
		rules:  make([]Rule, 0, len(rules)),
		byID:   make(map[string]Rule, len(rules)),
		byName: make(map[string]Rule, len(rules)),
		byCode: make(map[string]Rule, len(rules)),
	}

	for _, rule := range rules {
		if _, dup := reg.byID[rule.ID()]; dup {
			return nil, fmt.Errorf("duplicate rule id %s", rule.ID())
		}
		if _, dup := reg.byName[rule.Name()]; dup {
			return nil, fmt.Errorf("duplicate rule name %s", rule.Name())
		}

		reg.rules = append(reg.rules, rule)
		reg.byID[rule.ID()] = rule
		reg.byName[rule.Name()] = rule
		for _, code := range Codes(rule) {
			reg.byCode[code] = rule
		}
	}

	slices.SortFunc(reg.rules, func(a, b Rule) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return reg, nil
}

// MustNewRegistry is NewRegistry for static rule tables.
func MustNewRegistry(rules ...Rule) *Registry {
	reg, err := NewRegistry(rules...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Get retrieves a rule by ID, name, or any code it reports.
func (r *Registry) Get(key string) (Rule, bool) {
	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	rule, ok := r.byCode[key]
	return rule, ok
}

// Rules returns all rules in evaluation order.
func (r *Registry) Rules() []Rule {
	return slices.Clone(r.rules)
}

// IDs returns all rule IDs in evaluation order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.rules))
	for i, rule := range r.rules {
		ids[i] = rule.ID()
	}
	return ids
}

// Codes returns the codes a rule reports under.
func Codes(rule Rule) []string {
	if multi, ok := rule.(MultiCodeRule); ok {
		return multi.Codes()
	}
	return []string{rule.ID()}
}
