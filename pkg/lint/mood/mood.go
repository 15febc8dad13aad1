// Package mood decides whether a summary line opens with an imperative verb.
package mood

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// Verdict is the classifier's answer.
type Verdict int

const (
	// Undecided means the word is not a known verb form.
	Undecided Verdict = iota
	// Imperative means the word is the bare imperative form of a known verb.
	Imperative
	// NotImperative means the word is a known non-imperative form or a
	// blacklisted opener.
	NotImperative
)

func (v Verdict) String() string {
	switch v {
	case Imperative:
		return "imperative"
	case NotImperative:
		return "not imperative"
	default:
		return "undecided"
	}
}

//go:embed verbs.txt
var verbList string

//go:embed blacklist.txt
var blacklistList string

// Classifier matches words against stemmed imperative verbs.
type Classifier struct {
	// forms maps a stem to the imperative forms sharing it.
	forms     map[string][]string
	blacklist map[string]struct{}
}

// New builds a classifier from the embedded word lists.
func New() *Classifier {
	c := &Classifier{
		forms:     make(map[string][]string),
		blacklist: make(map[string]struct{}),
	}
	for _, verb := range words(verbList) {
		stem := english.Stem(verb, false)
		c.forms[stem] = append(c.forms[stem], verb)
	}
	for _, word := range words(blacklistList) {
		c.blacklist[word] = struct{}{}
	}
	return c
}

// Default returns a shared classifier. Classifiers are read-only after New.
//
//nolint:gochecknoglobals // built once from embedded data
var Default = sync.OnceValue(New)

// Classify judges a single word. Case and trailing punctuation are ignored.
func (c *Classifier) Classify(word string) Verdict {
	word = Normalize(word)
	if word == "" {
		return Undecided
	}
	if _, ok := c.blacklist[word]; ok {
		return NotImperative
	}

	forms, ok := c.forms[english.Stem(word, false)]
	if !ok {
		return Undecided
	}
	for _, form := range forms {
		if form == word {
			return Imperative
		}
	}
	return NotImperative
}

// Normalize lowercases word and strips non-letters from both ends.
func Normalize(word string) string {
	word = strings.TrimFunc(word, func(r rune) bool { return !unicode.IsLetter(r) })
	return strings.ToLower(word)
}

func words(list string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(list))
	for sc.Scan() {
		if word := strings.TrimSpace(sc.Text()); word != "" && !strings.HasPrefix(word, "#") {
			out = append(out, word)
		}
	}
	return out
}
