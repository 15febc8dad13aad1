package rules

import (
	"sync"

	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/lint"
	"github.com/yaklabco/gopep257/pkg/lint/mood"
)

// All returns a fresh instance of every built-in rule.
func All(opts Options) []lint.Rule {
	h := opts.Heuristics.withDefaults()

	return []lint.Rule{
		NewMissingDocsRule(),                         // D100-D104, R101-R103
		NewBlankLineBeforeRule(),                     // D201
		NewBlankLineAfterRule(),                      // D202
		NewSummarySeparationRule(),                   // D205
		NewBackslashRule(),                           // D301
		NewSummaryPunctuationRule(opts.StrictPeriod), // D400
		NewImperativeMoodRule(mood.Default()),        // D401
		NewNoSignatureRule(h.LooksLikeSignature),     // D402
		NewCapitalizedSummaryRule(),                  // D403
		NewCodeReferenceRule(h.LooksLikeCode),        // D405
		NewCommonTypeRule(h.IsCommonType),            // D406
	}
}

// NewRegistry builds a registry of the built-in rules.
func NewRegistry(opts Options) *lint.Registry {
	return lint.MustNewRegistry(All(opts)...)
}

// Default returns the shared registry with default options.
//
//nolint:gochecknoglobals // immutable, built once
var Default = sync.OnceValue(func() *lint.Registry {
	return NewRegistry(Options{})
})

// NewChecker returns a checker for opts, reusing the shared registry for
// the default options.
func NewChecker(opts Options) *lint.Checker {
	if !opts.StrictPeriod && opts.Heuristics.isZero() {
		return lint.NewChecker(Default())
	}
	return lint.NewChecker(NewRegistry(opts))
}

// OptionsFromConfig derives rule options from configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{StrictPeriod: cfg.StrictPeriod()}
}

// Infos describes the built-in rules for templates and listings, one entry
// per reported code.
func Infos(reg *lint.Registry) []config.RuleInfo {
	var infos []config.RuleInfo
	for _, rule := range reg.Rules() {
		for _, code := range lint.Codes(rule) {
			infos = append(infos, config.RuleInfo{
				ID:          code,
				Name:        rule.Name(),
				Description: rule.Description(),
				Severity:    rule.DefaultSeverity(),
			})
		}
	}
	return infos
}
