package rules

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options tunes the rule battery without changing which rules run.
type Options struct {
	// StrictPeriod makes D400 accept only '.' as terminal punctuation.
	StrictPeriod bool

	// Heuristics replaces the text heuristics. Nil fields use the defaults.
	Heuristics Heuristics
}

// Heuristics are the judgement calls some rules make about free text.
type Heuristics struct {
	// LooksLikeCode decides whether bracketed link text names code (D405).
	LooksLikeCode func(text string) bool

	// LooksLikeSignature decides whether a summary line is a call signature (D402).
	LooksLikeSignature func(line string) bool

	// IsCommonType decides whether link text is a well-known std type (D406).
	IsCommonType func(text string) bool
}

// DefaultHeuristics returns the built-in heuristics.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		LooksLikeCode:      LooksLikeCode,
		LooksLikeSignature: LooksLikeSignature,
		IsCommonType:       IsCommonType,
	}
}

func (h Heuristics) withDefaults() Heuristics {
	def := DefaultHeuristics()
	if h.LooksLikeCode == nil {
		h.LooksLikeCode = def.LooksLikeCode
	}
	if h.LooksLikeSignature == nil {
		h.LooksLikeSignature = def.LooksLikeSignature
	}
	if h.IsCommonType == nil {
		h.IsCommonType = def.IsCommonType
	}
	return h
}

// CommonTypes lists the std types that read better as inline code than as links.
func CommonTypes() []string {
	return []string{"Option", "Result", "Vec", "Box", "Rc", "Arc", "Some", "None", "Ok", "Err"}
}

// IsCommonType reports whether text is exactly one of CommonTypes.
func IsCommonType(text string) bool {
	return slices.Contains(CommonTypes(), strings.TrimSpace(text))
}

// LooksLikeCode accepts Rust paths (containing "::") and PascalCase
// identifiers: an uppercase start with a later uppercase and some lowercase.
func LooksLikeCode(text string) bool {
	text = strings.TrimSpace(text)
	if strings.Contains(text, "::") {
		return true
	}

	first, size := utf8.DecodeRuneInString(text)
	if first == utf8.RuneError || !unicode.IsUpper(first) {
		return false
	}
	rest := text[size:]
	return strings.IndexFunc(rest, unicode.IsUpper) >= 0 && strings.IndexFunc(text, unicode.IsLower) >= 0
}

// LooksLikeSignature flags lines with parentheses that also contain "->" or
// start with a lowercase letter or underscore.
func LooksLikeSignature(line string) bool {
	if !strings.Contains(line, "(") || !strings.Contains(line, ")") {
		return false
	}
	if strings.Contains(line, "->") {
		return true
	}

	first, _ := utf8.DecodeRuneInString(strings.TrimLeftFunc(line, unicode.IsSpace))
	return unicode.IsLower(first) || first == '_'
}

// terminalPunctuation returns the characters D400 accepts.
func terminalPunctuation(strict bool) string {
	if strict {
		return "."
	}
	return ".!?"
}

func endsWithAny(line, chars string) bool {
	last, _ := utf8.DecodeLastRuneInString(line)
	return last != utf8.RuneError && strings.ContainsRune(chars, last)
}

func (h Heuristics) isZero() bool {
	return h.LooksLikeCode == nil && h.LooksLikeSignature == nil && h.IsCommonType == nil
}
