package derive

import "github.com/derive-go/derive/lexer"

// Package is the declaration model extracted from one Go package.
type Package struct {
	// Name of the scanned package; generated output joins it.
	Name string
	// Decls in declaration order (files in sorted name order, then source
	// order within each file). Only declarations carrying derive:
	// directives are retained.
	Decls []*Decl
	// Imports is the union of the scanned files' import specs, as written.
	// Generated output re-declares them; formatting prunes the unused ones.
	Imports []string
}

// Kind of a declaration's shape.
type Kind int

const (
	KindStruct Kind = iota
	KindEnum
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "Struct"
	case KindEnum:
		return "Enum"
	case KindUnion:
		return "Union"
	}
	return "Unknown"
}

// Decl is one type declaration under derivation.
type Decl struct {
	Name       string
	NamePos    lexer.Position
	Directives []Directive

	Kind   Kind
	Struct *StructData // set when Kind == KindStruct
	Enum   *EnumData   // set when Kind == KindEnum
	Union  *UnionData  // set when Kind == KindUnion
}

// StructData is the field list of a struct shape.
type StructData struct {
	// Pos of the "struct" keyword; shape diagnostics anchor here.
	Pos    lexer.Position
	Fields []Field
}

// EnumData is the variant list of a sealed interface shape.
type EnumData struct {
	// Pos of the "interface" keyword; shape diagnostics anchor here.
	Pos      lexer.Position
	Variants []Variant
}

// UnionData marks a constraint interface with type union terms.
type UnionData struct {
	// Pos of the first union term.
	Pos lexer.Position
}

// Field is a single declared field.
type Field struct {
	// Name of the field; empty for embedded fields.
	Name string
	// Type is the field's type expression as written.
	Type string
	// Embedded marks an anonymous field, addressed positionally.
	Embedded   bool
	Pos        lexer.Position
	Directives []Directive
}

// Variant is one variant of an enum, carrying its fields like a struct.
type Variant struct {
	Name       string
	Pos        lexer.Position
	Fields     []Field
	Directives []Directive
}
