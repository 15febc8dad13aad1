package docstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleOf(t *testing.T) {
	tests := []struct {
		text string
		want CommentStyle
	}{
		{"/// Doc.", StyleOuterLine},
		{"///", StyleOuterLine},
		{"//// ruler", StyleNone},
		{"//! Inner.", StyleInnerLine},
		{"// plain", StyleNone},
		{"/** Block. */", StyleOuterBlock},
		{"/*** banner ***/", StyleNone},
		{"/**/", StyleNone},
		{"/*! Inner block. */", StyleInnerBlock},
		{"/* plain */", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, StyleOf(tt.text))
		})
	}
}

func TestNormalizeComments(t *testing.T) {
	tests := []struct {
		name     string
		comments []string
		want     string
	}{
		{
			name:     "line comments",
			comments: []string{"/// Summary.", "///", "///   Indented detail."},
			want:     "Summary.\n\nIndented detail.",
		},
		{
			name:     "inner line comments",
			comments: []string{"//! Crate.", "//! More."},
			want:     "Crate.\nMore.",
		},
		{
			name:     "leading and trailing blanks kept",
			comments: []string{"///", "/// Summary.", "///"},
			want:     "\nSummary.\n",
		},
		{
			name:     "trailing newline in comment text",
			comments: []string{"/// Summary.\n"},
			want:     "Summary.",
		},
		{
			name:     "block with gutter",
			comments: []string{"/**\n * Summary.\n *\n * Detail.\n */"},
			want:     "Summary.\n\nDetail.",
		},
		{
			name:     "single line block",
			comments: []string{"/** Summary. */"},
			want:     "Summary. ",
		},
		{
			name:     "inner block",
			comments: []string{"/*!\n   Crate docs.\n*/"},
			want:     "Crate docs.",
		},
		{
			name:     "block keeps blank first doc line",
			comments: []string{"/**\n *\n * Summary.\n */"},
			want:     "\nSummary.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeComments(tt.comments))
		})
	}
}

func TestDocAttributePayload(t *testing.T) {
	tests := []struct {
		attr   string
		want   string
		wantOK bool
	}{
		{`#[doc = "Summary."]`, "Summary.", true},
		{`#![doc = "Crate."]`, "Crate.", true},
		{`#[doc="tight"]`, "tight", true},
		{`#[doc = " padded "]`, " padded ", true},
		{`#[doc = "has \"escaped\" quotes"]`, `has \"escaped\" quotes`, true},
		{`#[doc = r#"Raw "quoted"."#]`, `Raw "quoted".`, true},
		{`#[doc = r"plain raw"]`, "plain raw", true},
		{`#[doc(hidden)]`, "", false},
		{`#[derive(Debug)]`, "", false},
		{`#[docs = "nope"]`, "", false},
		{`#[doc = "unterminated]`, "", false},
		{`not an attribute`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			got, ok := DocAttributePayload(tt.attr)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{""}, Lines("\n"))
	assert.Equal(t, []string{"a"}, Lines("a\n"))
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\n\nb"))
	assert.Equal(t, []string{"a", "b"}, Lines("a\r\nb\r\n"))
	assert.Equal(t, []string{"", "a"}, Lines("\na"))
}

func TestNew_Multiline(t *testing.T) {
	assert.False(t, New("Summary.", "", 1, 1, true, KindFunction).Multiline)
	assert.False(t, New("Summary.\n", "", 1, 1, true, KindFunction).Multiline)
	assert.True(t, New("Summary.\n\nDetail.", "", 1, 1, true, KindFunction).Multiline)
	assert.True(t, New("\nSummary.", "", 1, 1, true, KindFunction).Multiline)
}

func TestDocstring_Summary(t *testing.T) {
	doc := New("\n  \nFirst line.  \nSecond.", "", 1, 1, true, KindFunction)
	summary, idx := doc.Summary()
	assert.Equal(t, "First line.", summary)
	assert.Equal(t, 2, idx)

	blank := New(" \n ", "", 1, 1, true, KindFunction)
	assert.True(t, blank.IsBlank())
	_, idx = blank.Summary()
	assert.Equal(t, -1, idx)
}
