// Package docstring locates and normalizes the documentation attached to Rust
// declarations.
package docstring

import "strings"

// Declaration is a documentable item found in a syntax tree.
type Declaration struct {
	Kind   DeclarationKind
	Public bool
	Line   int
	Column int
	Name   string
}

// Docstring is the normalized documentation of one declaration.
// Empty Content means the declaration is undocumented; Line and Column then
// point at the declaration itself.
type Docstring struct {
	// Content is the normalized text with comment markers stripped.
	Content string

	// RawContent is the documentation as written in the source.
	RawContent string

	Line   int
	Column int

	// Multiline holds when Content has more than one line. A single trailing
	// newline does not start a new line.
	Multiline bool

	Public bool
	Target DeclarationKind

	// Name of the documented declaration, empty for the package.
	Name string
}

// New builds a Docstring and derives Multiline from content.
func New(content, raw string, line, column int, public bool, target DeclarationKind) Docstring {
	return Docstring{
		Content:    content,
		RawContent: raw,
		Line:       line,
		Column:     column,
		Multiline:  len(Lines(content)) > 1,
		Public:     public,
		Target:     target,
	}
}

// IsBlank reports whether the content holds nothing but whitespace.
func (d *Docstring) IsBlank() bool {
	return strings.TrimSpace(d.Content) == ""
}

// Lines splits the content the way the rules read it.
func (d *Docstring) Lines() []string {
	return Lines(d.Content)
}

// Summary returns the first non-empty line, trimmed, and its index.
// The index is -1 when every line is blank.
func (d *Docstring) Summary() (string, int) {
	for i, line := range d.Lines() {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, i
		}
	}
	return "", -1
}

// Lines splits text on "\n". A trailing newline terminates the last line
// instead of starting an empty one, and a trailing "\r" is dropped.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
