package docstring

import (
	"strings"

	"github.com/yaklabco/gopep257/pkg/syntax"
)

// Classify reports whether node is a documentable declaration and describes it.
func Classify(node syntax.Node) (Declaration, bool) {
	if node == nil {
		return Declaration{}, false
	}

	kind, ok := KindOf(node.Kind())
	if !ok {
		return Declaration{}, false
	}

	return Declaration{
		Kind:   kind,
		Public: isPublic(node, kind),
		Line:   node.Line(),
		Column: node.Column(),
		Name:   declarationName(node, kind),
	}, true
}

func isPublic(node syntax.Node, kind DeclarationKind) bool {
	switch kind {
	case KindMacro:
		return isMacroExported(node)
	case KindImpl:
		// Impl blocks carry no visibility of their own.
		return false
	}

	if vis := node.ChildByField("visibility"); vis != nil {
		return isPubToken(vis.Text())
	}
	for _, child := range node.Children() {
		if child.Kind() == syntax.KindVisibilityModifier {
			return isPubToken(child.Text())
		}
	}
	return hasPubPrefix(node.Text())
}

// isPubToken accepts a bare pub. Restricted forms such as pub(crate) do not
// export the item.
func isPubToken(text string) bool {
	return strings.TrimSpace(text) == "pub"
}

func hasPubPrefix(text string) bool {
	rest, ok := strings.CutPrefix(text, "pub")
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n'
}

// isMacroExported looks back over the attributes and comments preceding a
// macro_rules! definition for #[macro_export].
func isMacroExported(node syntax.Node) bool {
	for sib := node.PrevSibling(); sib != nil; sib = sib.PrevSibling() {
		switch sib.Kind() {
		case syntax.KindAttributeItem:
			if isMacroExportAttr(sib.Text()) {
				return true
			}
		case syntax.KindLineComment, syntax.KindBlockComment:
		default:
			return false
		}
	}
	return false
}

func isMacroExportAttr(text string) bool {
	inner := strings.TrimSpace(text)
	inner = strings.TrimPrefix(inner, "#")
	inner = strings.TrimSpace(inner)
	inner = strings.TrimPrefix(inner, "[")
	inner = strings.TrimSuffix(inner, "]")
	inner = strings.TrimSpace(inner)

	return inner == "macro_export" || strings.HasPrefix(inner, "macro_export(")
}

func declarationName(node syntax.Node, kind DeclarationKind) string {
	field := "name"
	if kind == KindImpl {
		field = "type"
	}
	if name := node.ChildByField(field); name != nil {
		return name.Text()
	}
	return ""
}
