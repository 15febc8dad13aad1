package docstring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gopep257/pkg/syntax"
)

func extract(t *testing.T, src string) []Docstring {
	t.Helper()

	tree, err := syntax.NewParser().Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	return Extract(tree.Root())
}

// findDoc returns the docstring documenting the named declaration.
func findDoc(t *testing.T, docs []Docstring, name string) Docstring {
	t.Helper()

	for _, doc := range docs {
		if doc.Name == name {
			return doc
		}
	}
	require.Failf(t, "docstring not found", "no docstring for %q", name)
	return Docstring{}
}

func TestExtract_LineComments(t *testing.T) {
	docs := extract(t, "/// Calculate the sum.\n///\n/// Longer text.\npub fn add() {}\n")

	require.Len(t, docs, 2)
	assert.Equal(t, KindPackage, docs[0].Target)
	assert.Empty(t, docs[0].Content)

	doc := docs[1]
	assert.Equal(t, "add", doc.Name)
	assert.Equal(t, KindFunction, doc.Target)
	assert.True(t, doc.Public)
	assert.True(t, doc.Multiline)
	assert.Equal(t, "Calculate the sum.\n\nLonger text.", doc.Content)
	assert.Equal(t, "/// Calculate the sum.\n///\n/// Longer text.", doc.RawContent)
	assert.Equal(t, 1, doc.Line)
	assert.Equal(t, 1, doc.Column)
}

func TestExtract_AttributesWin(t *testing.T) {
	docs := extract(t, "/// Comment doc.\n#[doc = \"Attribute doc.\"]\npub fn f() {}\n")

	doc := findDoc(t, docs, "f")
	assert.Equal(t, "Attribute doc.", doc.Content)
	assert.Equal(t, `#[doc = "Attribute doc."]`, doc.RawContent)

	// The position is the top of the doc block, not the winning attribute.
	assert.Equal(t, 1, doc.Line)
	assert.Equal(t, 1, doc.Column)
}

func TestExtract_AttributeBeforeComment(t *testing.T) {
	docs := extract(t, "#[doc = \"Attribute doc.\"]\n/// Comment doc.\npub fn f() {}\n")

	doc := findDoc(t, docs, "f")
	assert.Equal(t, "Attribute doc.", doc.Content)
	assert.Equal(t, 1, doc.Line)
}

func TestExtract_MultipleAttributes(t *testing.T) {
	docs := extract(t, "#[doc = \"First.\"]\n#[doc = \"\"]\n#[doc = \"Second.\"]\npub fn f() {}\n")

	doc := findDoc(t, docs, "f")
	assert.Equal(t, "First.\n\nSecond.", doc.Content)
	assert.Equal(t, 1, doc.Line)
}

func TestExtract_SkipsNonDocAttributes(t *testing.T) {
	docs := extract(t, "/// A point.\n#[derive(Debug, Clone)]\n#[doc(hidden)]\npub struct Point;\n")

	doc := findDoc(t, docs, "Point")
	assert.Equal(t, KindStruct, doc.Target)
	assert.Equal(t, "A point.", doc.Content)
	assert.Equal(t, 1, doc.Line)
}

func TestExtract_OrdinaryCommentStopsWalk(t *testing.T) {
	docs := extract(t, "/// Doc.\n// plain\npub fn f() {}\n")

	doc := findDoc(t, docs, "f")
	assert.Empty(t, doc.Content)
	assert.Equal(t, 3, doc.Line)
	assert.Equal(t, 1, doc.Column)
}

func TestExtract_PreviousItemStopsWalk(t *testing.T) {
	docs := extract(t, "/// First.\npub fn first() {}\npub fn second() {}\n")

	assert.Equal(t, "First.", findDoc(t, docs, "first").Content)
	assert.Empty(t, findDoc(t, docs, "second").Content)
}

func TestExtract_BlockComment(t *testing.T) {
	docs := extract(t, "/**\n * Block summary.\n */\npub fn f() {}\n")

	doc := findDoc(t, docs, "f")
	assert.Equal(t, "Block summary.", doc.Content)
	assert.Equal(t, 1, doc.Line)
	assert.False(t, doc.Multiline)
}

func TestExtract_PackageDocs(t *testing.T) {
	docs := extract(t, "// Copyright notice.\n//! Crate docs.\n//! More.\n\npub fn f() {}\n")

	require.NotEmpty(t, docs)
	pkg := docs[0]
	assert.Equal(t, KindPackage, pkg.Target)
	assert.True(t, pkg.Public)
	assert.Equal(t, "Crate docs.\nMore.", pkg.Content)
	assert.Equal(t, 2, pkg.Line)
}

func TestExtract_PackageDocAttribute(t *testing.T) {
	docs := extract(t, "#![doc = \"Crate.\"]\n#![allow(dead_code)]\n\npub fn f() {}\n")

	require.NotEmpty(t, docs)
	assert.Equal(t, KindPackage, docs[0].Target)
	assert.Equal(t, "Crate.", docs[0].Content)
}

func TestExtract_NoPackageForPrivateFile(t *testing.T) {
	docs := extract(t, "fn helper() {}\n")

	require.Len(t, docs, 1)
	assert.Equal(t, KindFunction, docs[0].Target)
	assert.False(t, docs[0].Public)
}

func TestExtract_Visibility(t *testing.T) {
	src := `pub(crate) fn internal() {}
pub trait Shape {
    fn area(&self) -> f64;
}
struct Point;
impl Point {
    pub fn new() -> Self { Point }
}
`
	docs := extract(t, src)

	assert.False(t, findDoc(t, docs, "internal").Public)
	assert.True(t, findDoc(t, docs, "Shape").Public)

	area := findDoc(t, docs, "area")
	assert.Equal(t, KindFunction, area.Target)
	assert.False(t, area.Public)

	var impl Docstring
	for _, doc := range docs {
		if doc.Target == KindImpl {
			impl = doc
		}
	}
	assert.Equal(t, "Point", impl.Name)
	assert.False(t, impl.Public)

	ctor := findDoc(t, docs, "new")
	assert.True(t, ctor.Public)
	assert.Empty(t, ctor.Content)
	assert.Equal(t, 7, ctor.Line)
	assert.Equal(t, 5, ctor.Column)
}

// Restricted visibility does not export an item, so pub(crate) and friends
// never require documentation.
func TestExtract_RestrictedVisibilityIsPrivate(t *testing.T) {
	src := `pub(crate) fn krate() {}
pub(super) fn parent() {}
pub(self) fn own() {}
pub(in crate::geometry) fn scoped() {}
pub fn open() {}
`
	docs := extract(t, src)

	for _, name := range []string{"krate", "parent", "own", "scoped"} {
		assert.False(t, findDoc(t, docs, name).Public, name)
	}
	assert.True(t, findDoc(t, docs, "open").Public)
}

func TestExtract_DocumentOrder(t *testing.T) {
	src := `pub mod outer {
    pub fn inner() {}
}
pub const LIMIT: u32 = 1;
pub static NAME: &str = "x";
pub type Alias = u32;
pub enum Mode { A }
`
	docs := extract(t, src)

	kinds := make([]DeclarationKind, 0, len(docs))
	for _, doc := range docs {
		kinds = append(kinds, doc.Target)
	}
	assert.Equal(t, []DeclarationKind{
		KindPackage, KindModule, KindFunction, KindConst, KindStatic, KindTypeAlias, KindEnum,
	}, kinds)
}

func TestExtract_Macro(t *testing.T) {
	docs := extract(t, "/// Make a thing.\n#[macro_export]\nmacro_rules! make {\n    () => {};\n}\n\nmacro_rules! hidden {\n    () => {};\n}\n")

	exported := findDoc(t, docs, "make")
	assert.Equal(t, KindMacro, exported.Target)
	assert.True(t, exported.Public)
	assert.Equal(t, "Make a thing.", exported.Content)

	assert.False(t, findDoc(t, docs, "hidden").Public)
}

func TestLocate_NotDocumentable(t *testing.T) {
	tree, err := syntax.NewParser().Parse(context.Background(), []byte("use std::fmt;\n"))
	require.NoError(t, err)

	_, ok := Locate(tree.Root().Children()[0])
	assert.False(t, ok)
}

func TestExtract_Idempotent(t *testing.T) {
	src := "//! Crate.\n\n/// Add.\npub fn add() {}\n"
	assert.Equal(t, extract(t, src), extract(t, src))
}
