// Package markdown scans rustdoc text for bracketed link text outside inline
// code spans.
package markdown

import "strings"

// SpanKind describes what follows a bracketed span.
type SpanKind int

const (
	// Standalone is a bare [text] intra-doc link.
	Standalone SpanKind = iota
	// InlineLink is [text](target).
	InlineLink
	// Reference is [text][label].
	Reference
)

// Span is the display text of one bracketed span.
type Span struct {
	Text string
	Kind SpanKind

	// Target is the link target or reference label, unevaluated.
	Target string

	// Line and Column locate the opening bracket in the normalized doc
	// text, offset by the origin passed to Scan. They are not source
	// positions: the stripped comment leader (/// and its space, or a block
	// comment's leading *) is not counted.
	Line   int
	Column int
}

// HasBackticks reports whether the display text already uses inline code.
func (s Span) HasBackticks() bool {
	return strings.Contains(s.Text, "`")
}

// scanner walks text one rune at a time tracking its position.
type scanner struct {
	runes     []rune
	pos       int
	line      int
	column    int
	colOrigin int
}

func (s *scanner) done() bool { return s.pos >= len(s.runes) }

func (s *scanner) peek() rune { return s.runes[s.pos] }

func (s *scanner) advance() {
	if s.runes[s.pos] == '\n' {
		s.line++
		s.column = s.colOrigin
	} else {
		s.column++
	}
	s.pos++
}

// until consumes runes up to (not including) stop and reports whether stop
// was found.
func (s *scanner) until(stop rune) (string, bool) {
	start := s.pos
	for !s.done() && s.peek() != stop {
		s.advance()
	}
	return string(s.runes[start:s.pos]), !s.done()
}

// Scan finds bracketed spans in text whose first line starts at line:column.
// Each backtick toggles inline code and brackets inside code are ignored.
// An unterminated bracket ends the scan.
func Scan(text string, line, column int) []Span {
	s := &scanner{runes: []rune(text), line: line, column: column, colOrigin: column}

	var spans []Span
	inCode := false
	for !s.done() {
		r := s.peek()
		switch {
		case r == '`':
			inCode = !inCode
			s.advance()

		case inCode || r != '[':
			s.advance()

		default:
			span := Span{Line: s.line, Column: s.column}
			s.advance()

			display, ok := s.until(']')
			if !ok {
				return spans
			}
			s.advance()
			span.Text = display

			if !s.done() {
				switch s.peek() {
				case '(':
					span.Kind = InlineLink
					span.Target = s.tail(')')
				case '[':
					span.Kind = Reference
					span.Target = s.tail(']')
				}
			}

			spans = append(spans, span)
		}
	}
	return spans
}

// tail consumes an opening delimiter, its contents, and the closing rune.
func (s *scanner) tail(closing rune) string {
	s.advance()
	target, ok := s.until(closing)
	if ok {
		s.advance()
	}
	return target
}

// StripLinks replaces [text](target) with text. Other brackets are kept.
func StripLinks(text string) string {
	runes := []rune(text)

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); i++ {
		if runes[i] != '[' {
			b.WriteRune(runes[i])
			continue
		}

		closeIdx := indexRune(runes, i+1, ']')
		if closeIdx < 0 || closeIdx+1 >= len(runes) || runes[closeIdx+1] != '(' {
			b.WriteRune(runes[i])
			continue
		}
		b.WriteString(string(runes[i+1 : closeIdx]))

		// An unclosed target swallows the rest of the text.
		parenIdx := indexRune(runes, closeIdx+2, ')')
		if parenIdx < 0 {
			break
		}
		i = parenIdx
	}
	return b.String()
}

func indexRune(runes []rune, from int, target rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}
