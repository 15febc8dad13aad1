package docstring

// DeclarationKind is the closed set of documentable declaration kinds.
type DeclarationKind int

const (
	KindFunction DeclarationKind = iota + 1
	KindStruct
	KindEnum
	KindTrait
	KindImpl
	KindModule
	KindPackage
	KindConst
	KindStatic
	KindTypeAlias
	KindMacro
)

type kindInfo struct {
	label       string
	missingCode string
}

//nolint:gochecknoglobals // fixed lookup table
var kindTable = map[DeclarationKind]kindInfo{
	KindFunction:  {label: "function", missingCode: "D103"},
	KindStruct:    {label: "struct", missingCode: "D101"},
	KindEnum:      {label: "enum", missingCode: "D101"},
	KindTrait:     {label: "trait", missingCode: "D101"},
	KindImpl:      {label: "impl", missingCode: "D102"},
	KindModule:    {label: "module", missingCode: "D100"},
	KindPackage:   {label: "package", missingCode: "D104"},
	KindConst:     {label: "const", missingCode: "R102"},
	KindStatic:    {label: "static", missingCode: "R102"},
	KindTypeAlias: {label: "type alias", missingCode: "R101"},
	KindMacro:     {label: "macro", missingCode: "R103"},
}

//nolint:gochecknoglobals // fixed lookup table
var nodeKinds = map[string]DeclarationKind{
	"function_item":           KindFunction,
	"function_signature_item": KindFunction,
	"struct_item":             KindStruct,
	"enum_item":               KindEnum,
	"trait_item":              KindTrait,
	"impl_item":               KindImpl,
	"mod_item":                KindModule,
	"const_item":              KindConst,
	"static_item":             KindStatic,
	"type_item":               KindTypeAlias,
	"macro_definition":        KindMacro,
}

// KindOf maps a syntax node kind to a declaration kind.
// Package is never produced here; it is synthesized once per file.
func KindOf(nodeKind string) (DeclarationKind, bool) {
	kind, ok := nodeKinds[nodeKind]
	return kind, ok
}

// String returns the lowercase label used in messages.
func (k DeclarationKind) String() string {
	if info, ok := kindTable[k]; ok {
		return info.label
	}
	return "unknown"
}

// MissingDocCode returns the rule code reported when a public declaration
// of this kind has no documentation.
func (k DeclarationKind) MissingDocCode() string {
	return kindTable[k].missingCode
}

// Kinds returns every declaration kind in declaration order.
func Kinds() []DeclarationKind {
	return []DeclarationKind{
		KindFunction, KindStruct, KindEnum, KindTrait, KindImpl, KindModule,
		KindPackage, KindConst, KindStatic, KindTypeAlias, KindMacro,
	}
}
