package docstring

import (
	"strings"
)

// CommentStyle identifies a documentation comment form.
type CommentStyle int

const (
	StyleNone CommentStyle = iota
	StyleOuterLine          // ///
	StyleOuterBlock         // /** */
	StyleInnerLine          // //!
	StyleInnerBlock         // /*! */
)

// StyleOf classifies comment source text. Plain comments, "////" rulers and
// "/***" banners are StyleNone, as is the empty block "/**/".
func StyleOf(text string) CommentStyle {
	switch {
	case strings.HasPrefix(text, "///"):
		if strings.HasPrefix(text, "////") {
			return StyleNone
		}
		return StyleOuterLine
	case strings.HasPrefix(text, "//!"):
		return StyleInnerLine
	case strings.HasPrefix(text, "/**"):
		if strings.HasPrefix(text, "/***") || strings.HasPrefix(text, "/**/") {
			return StyleNone
		}
		return StyleOuterBlock
	case strings.HasPrefix(text, "/*!"):
		return StyleInnerBlock
	default:
		return StyleNone
	}
}

// IsLine reports whether the style is a line comment form.
func (s CommentStyle) IsLine() bool {
	return s == StyleOuterLine || s == StyleInnerLine
}

// IsBlock reports whether the style is a block comment form.
func (s CommentStyle) IsBlock() bool {
	return s == StyleOuterBlock || s == StyleInnerBlock
}

// NormalizeComments strips comment markers from consecutive doc comments and
// joins the resulting lines with "\n". Blank lines are kept.
func NormalizeComments(comments []string) string {
	var lines []string
	for _, comment := range comments {
		switch style := StyleOf(comment); {
		case style.IsLine():
			lines = append(lines, normalizeLine(comment))
		case style.IsBlock():
			lines = append(lines, normalizeBlock(comment)...)
		default:
			lines = append(lines, comment)
		}
	}
	return strings.Join(lines, "\n")
}

func normalizeLine(comment string) string {
	comment = strings.TrimRight(comment, "\r\n")
	return strings.TrimLeft(comment[3:], " \t")
}

// normalizeBlock strips the delimiters and each line's leading "*" gutter.
// The remainder of the opening line and the line carrying "*/" are dropped
// when empty since they belong to the delimiters.
func normalizeBlock(comment string) []string {
	body := strings.TrimSuffix(strings.TrimRight(comment, "\r\n"), "*/")
	body = body[3:]

	raw := strings.Split(body, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimLeft(line, " \t")
		line = strings.TrimPrefix(line, "*")
		lines = append(lines, strings.TrimLeft(line, " \t"))
	}

	if len(lines) > 1 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 1 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// DocAttributePayload extracts the string literal from a `#[doc = "..."]` or
// `#![doc = "..."]` attribute. The payload is returned as written: escapes are
// not decoded and no whitespace is trimmed.
func DocAttributePayload(attr string) (string, bool) {
	text := strings.TrimSpace(attr)
	switch {
	case strings.HasPrefix(text, "#!"):
		text = text[2:]
	case strings.HasPrefix(text, "#"):
		text = text[1:]
	default:
		return "", false
	}

	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		return "", false
	}
	text = strings.TrimSpace(text[1 : len(text)-1])

	rest, ok := strings.CutPrefix(text, "doc")
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	rest, ok = strings.CutPrefix(rest, "=")
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)

	if strings.HasPrefix(rest, "r") {
		return rawStringLiteral(rest[1:])
	}
	return stringLiteral(rest)
}

func stringLiteral(text string) (string, bool) {
	if !strings.HasPrefix(text, `"`) {
		return "", false
	}
	for i := 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '"':
			return text[1:i], true
		}
	}
	return "", false
}

// rawStringLiteral parses the part after the leading r of r#"..."#.
func rawStringLiteral(text string) (string, bool) {
	hashes := len(text) - len(strings.TrimLeft(text, "#"))
	text = text[hashes:]
	if !strings.HasPrefix(text, `"`) {
		return "", false
	}

	closing := `"` + strings.Repeat("#", hashes)
	end := strings.Index(text[1:], closing)
	if end < 0 {
		return "", false
	}
	return text[1 : 1+end], true
}
