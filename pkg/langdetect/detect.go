// Package langdetect classifies files found while walking a source tree:
// which ones are Rust, which are generated, and which live in vendored or
// hidden locations.
package langdetect

import (
	"bufio"
	"bytes"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Rust is the language name go-enry reports for Rust sources.
const Rust = "Rust"

// IsRust reports whether path names a Rust source file by its extension.
func IsRust(path string) bool {
	lang, _ := enry.GetLanguageByExtension(filepath.Base(path))
	return lang == Rust
}

// Language returns the language for a file, consulting content when the
// name alone is ambiguous. An empty string means unknown.
func Language(path string, content []byte) string {
	return enry.GetLanguage(filepath.Base(path), content)
}

// headerLines is how far into a file generator markers are looked for.
const headerLines = 5

// generatedMarkers are the header phrases Rust code generators leave behind
// (rust-bindgen, prost, cargo's @generated convention).
//
//nolint:gochecknoglobals // read-only lookup table
var generatedMarkers = [][]byte{
	[]byte("@generated"),
	[]byte("automatically generated"),
	[]byte("DO NOT EDIT"),
}

// IsGenerated reports whether content looks machine generated, either by
// go-enry's detectors or by a generator marker in the first few lines.
func IsGenerated(path string, content []byte) bool {
	if enry.IsGenerated(filepath.ToSlash(path), content) {
		return true
	}

	sc := bufio.NewScanner(bytes.NewReader(content))
	for i := 0; i < headerLines && sc.Scan(); i++ {
		line := sc.Bytes()
		for _, marker := range generatedMarkers {
			if bytes.Contains(line, marker) {
				return true
			}
		}
	}
	return false
}

// IsVendored reports whether a slash-separated relative path lies in a
// vendored dependency tree. Directory paths should end in "/".
func IsVendored(relPath string) bool {
	return enry.IsVendor(filepath.ToSlash(relPath))
}

// IsHidden reports whether a file or directory name is a dotfile.
func IsHidden(name string) bool {
	return name != "." && name != ".." && enry.IsDotFile(name)
}
