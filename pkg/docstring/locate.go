package docstring

import (
	"slices"
	"strings"

	"github.com/yaklabco/gopep257/pkg/syntax"
)

// docPiece is one comment or attribute contributing to a doc block.
type docPiece struct {
	raw     string
	payload string
	line    int
	column  int
}

// docRun holds the two kinds of documentation that may precede an item.
// Pieces are kept in source order.
type docRun struct {
	comments []docPiece
	attrs    []docPiece
}

func (r *docRun) empty() bool {
	return len(r.comments) == 0 && len(r.attrs) == 0
}

// docstring resolves the run into a Docstring. Attributes take precedence
// over comments for the text; the position is the start of the doc block,
// whichever kind of piece opens it.
func (r *docRun) docstring(public bool, target DeclarationKind) Docstring {
	first := r.first()
	if len(r.attrs) > 0 {
		raws := make([]string, len(r.attrs))
		payloads := make([]string, len(r.attrs))
		for i, attr := range r.attrs {
			raws[i] = attr.raw
			payloads[i] = attr.payload
		}
		return New(strings.Join(payloads, "\n"), strings.Join(raws, "\n"), first.line, first.column, public, target)
	}

	raws := make([]string, len(r.comments))
	for i, comment := range r.comments {
		raws[i] = strings.TrimRight(comment.raw, "\r\n")
	}
	return New(NormalizeComments(raws), strings.Join(raws, "\n"), first.line, first.column, public, target)
}

// first returns the earliest piece of either kind. The run must not be empty.
func (r *docRun) first() docPiece {
	var pieces []docPiece
	if len(r.comments) > 0 {
		pieces = append(pieces, r.comments[0])
	}
	if len(r.attrs) > 0 {
		pieces = append(pieces, r.attrs[0])
	}
	return slices.MinFunc(pieces, func(a, b docPiece) int {
		if a.line != b.line {
			return a.line - b.line
		}
		return a.column - b.column
	})
}

// Locate returns the documentation attached to node. The boolean is false
// only when node is not a documentable declaration.
func Locate(node syntax.Node) (Docstring, bool) {
	decl, ok := Classify(node)
	if !ok {
		return Docstring{}, false
	}
	return LocateDeclaration(node, decl), true
}

// LocateDeclaration collects the doc comments and doc attributes directly
// preceding an already classified node.
func LocateDeclaration(node syntax.Node, decl Declaration) Docstring {
	run := outerDocRun(precedingSiblings(node))
	if run.empty() {
		doc := New("", "", decl.Line, decl.Column, decl.Public, decl.Kind)
		doc.Name = decl.Name
		return doc
	}

	doc := run.docstring(decl.Public, decl.Kind)
	doc.Name = decl.Name
	return doc
}

// precedingSiblings lists the siblings before node, nearest first, stopping
// after the first node that cannot be part of a doc block.
func precedingSiblings(node syntax.Node) []syntax.Node {
	var siblings []syntax.Node
	for sib := node.PrevSibling(); sib != nil; sib = sib.PrevSibling() {
		siblings = append(siblings, sib)
		switch sib.Kind() {
		case syntax.KindLineComment, syntax.KindBlockComment, syntax.KindAttributeItem:
		default:
			if strings.TrimSpace(sib.Text()) != "" {
				return siblings
			}
		}
	}
	return siblings
}

func outerDocRun(siblings []syntax.Node) docRun {
	var run docRun

scan:
	for _, sib := range siblings {
		text := sib.Text()

		switch sib.Kind() {
		case syntax.KindLineComment:
			if StyleOf(text) != StyleOuterLine {
				break scan
			}
			run.comments = append(run.comments, pieceOf(sib, ""))

		case syntax.KindBlockComment:
			if StyleOf(text) == StyleOuterBlock {
				run.comments = append(run.comments, pieceOf(sib, ""))
			}
			break scan

		case syntax.KindAttributeItem:
			if payload, ok := DocAttributePayload(text); ok {
				run.attrs = append(run.attrs, pieceOf(sib, payload))
			}

		default:
			if strings.TrimSpace(text) != "" {
				break scan
			}
		}
	}

	// Collected nearest first.
	slices.Reverse(run.comments)
	slices.Reverse(run.attrs)
	return run
}

func pieceOf(node syntax.Node, payload string) docPiece {
	return docPiece{raw: node.Text(), payload: payload, line: node.Line(), column: node.Column()}
}

// LocatePackage finds the crate or module-level documentation written with
// //!, /*! */ or #![doc = "..."] at the top of the file. When there is none,
// a missing package Docstring at 1:1 is returned if the file exports
// anything; otherwise the boolean is false.
func LocatePackage(root syntax.Node, hasPublic bool) (Docstring, bool) {
	var run docRun
	started := false

scan:
	for _, child := range root.Children() {
		text := child.Text()

		switch child.Kind() {
		case syntax.KindLineComment:
			if StyleOf(text) == StyleInnerLine {
				run.comments = append(run.comments, pieceOf(child, ""))
				started = true
				continue
			}
			if started {
				break scan
			}

		case syntax.KindBlockComment:
			if StyleOf(text) == StyleInnerBlock {
				run.comments = append(run.comments, pieceOf(child, ""))
				break scan
			}
			if started {
				break scan
			}

		case syntax.KindInnerAttributeItem:
			if payload, ok := DocAttributePayload(text); ok {
				run.attrs = append(run.attrs, pieceOf(child, payload))
				started = true
			}

		default:
			break scan
		}
	}

	if run.empty() {
		if !hasPublic {
			return Docstring{}, false
		}
		return New("", "", 1, 1, true, KindPackage), true
	}
	return run.docstring(true, KindPackage), true
}
