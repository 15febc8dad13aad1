package docstring

import "github.com/yaklabco/gopep257/pkg/syntax"

// Extract returns one Docstring per documentable declaration under root, in
// document order, preceded by the package docstring when there is one.
func Extract(root syntax.Node) []Docstring {
	type located struct {
		node syntax.Node
		decl Declaration
	}

	var (
		decls     []located
		hasPublic bool
	)
	syntax.Walk(root, func(node syntax.Node) bool {
		if decl, ok := Classify(node); ok {
			decls = append(decls, located{node: node, decl: decl})
			hasPublic = hasPublic || decl.Public
		}
		return true
	})

	docs := make([]Docstring, 0, len(decls)+1)
	if pkg, ok := LocatePackage(root, hasPublic); ok {
		docs = append(docs, pkg)
	}
	for _, item := range decls {
		docs = append(docs, LocateDeclaration(item.node, item.decl))
	}
	return docs
}
