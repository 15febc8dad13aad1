// Package syntax adapts the tree-sitter Rust grammar to the small node surface
// the doc locator needs.
package syntax

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
)

// ErrSyntax is returned when a syntax tree could not be built for a source file.
var ErrSyntax = errors.New("syntax tree construction failed")

// Node kinds produced by the Rust grammar that the locator cares about.
const (
	KindSourceFile         = "source_file"
	KindLineComment        = "line_comment"
	KindBlockComment       = "block_comment"
	KindAttributeItem      = "attribute_item"
	KindInnerAttributeItem = "inner_attribute_item"
	KindVisibilityModifier = "visibility_modifier"
)

// Node is a read-only view over one syntax node.
// Lines and columns are 1-based; columns count bytes.
type Node interface {
	Kind() string
	Text() string
	Line() int
	Column() int
	IsNamed() bool

	// PrevSibling returns nil when the node is the first child.
	PrevSibling() Node

	// ChildByField returns nil when the field is absent.
	ChildByField(name string) Node

	Children() []Node
	Parent() Node
}

// Parser builds Rust syntax trees. A Parser is not safe for concurrent use;
// create one per goroutine.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a parser configured for Rust.
func NewParser() *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())

	return &Parser{parser: parser}
}

// Tree is a parsed source file.
type Tree struct {
	tree   *sitter.Tree
	source []byte
}

// Parse builds a syntax tree for source. Malformed Rust still yields a tree
// with error nodes; only a failure to build any tree is reported.
func (p *Parser) Parse(ctx context.Context, source []byte) (*Tree, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if tree == nil || tree.RootNode() == nil {
		return nil, ErrSyntax
	}

	return &Tree{tree: tree, source: source}, nil
}

// Root returns the source_file node.
func (t *Tree) Root() Node {
	return wrap(t.tree.RootNode(), t.source)
}

// HasErrors reports whether the parser had to recover from malformed input.
func (t *Tree) HasErrors() bool {
	return t.tree.RootNode().HasError()
}

type tsNode struct {
	node   *sitter.Node
	source []byte
}

// wrap keeps nil *sitter.Node values from turning into non-nil interfaces.
func wrap(node *sitter.Node, source []byte) Node {
	if node == nil || node.IsNull() {
		return nil
	}
	return &tsNode{node: node, source: source}
}

func (n *tsNode) Kind() string { return n.node.Type() }

func (n *tsNode) Text() string {
	start, end := n.node.StartByte(), n.node.EndByte()
	if int(end) > len(n.source) || start > end {
		return ""
	}
	return string(n.source[start:end])
}

func (n *tsNode) Line() int { return int(n.node.StartPoint().Row) + 1 }

func (n *tsNode) Column() int { return int(n.node.StartPoint().Column) + 1 }

func (n *tsNode) IsNamed() bool { return n.node.IsNamed() }

func (n *tsNode) PrevSibling() Node { return wrap(n.node.PrevSibling(), n.source) }

func (n *tsNode) ChildByField(name string) Node {
	return wrap(n.node.ChildByFieldName(name), n.source)
}

func (n *tsNode) Children() []Node {
	count := int(n.node.ChildCount())
	children := make([]Node, 0, count)
	for i := range count {
		if child := wrap(n.node.Child(i), n.source); child != nil {
			children = append(children, child)
		}
	}
	return children
}

func (n *tsNode) Parent() Node { return wrap(n.node.Parent(), n.source) }

// Walk visits node and its descendants in pre-order (document order).
// Returning false from visit skips the node's children.
func Walk(node Node, visit func(Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for _, child := range node.Children() {
		Walk(child, visit)
	}
}
