package derive

import (
	"fmt"
	"strings"
)

// Member addresses one field of its owning type in generated code: named
// fields by identifier, embedded fields by position.
type Member struct {
	// Named distinguishes the two access forms.
	Named bool
	// Name is the field identifier, or the embedded type's base name (the
	// implicit Go field name) for positional members.
	Name string
	// Index is the field's zero-based declaration position.
	Index int
}

// Sel returns the selector used to access this member on a value.
func (m Member) Sel() string { return m.Name }

// FieldBinding pairs a field with the local name it binds to in generated
// code.
type FieldBinding struct {
	// Name is the binding identifier: the declared field name, or
	// "binding_<index>" for embedded fields.
	Name   string
	Member Member
	// Type is the field's type expression, carried through for generators.
	Type string
}

// NewFieldBinding creates the binding for the field at position idx.
//
// Named fields reuse their declared identifier. Embedded fields are
// assigned synthetic identifiers of the form "binding_<index>", unique
// because the index is.
func NewFieldBinding(idx int, field Field) FieldBinding {
	if !field.Embedded {
		return FieldBinding{
			Name:   field.Name,
			Member: Member{Named: true, Name: field.Name, Index: idx},
			Type:   field.Type,
		}
	}
	return FieldBinding{
		Name:   fmt.Sprintf("binding_%d", idx),
		Member: Member{Name: embeddedBaseName(field.Type), Index: idx},
		Type:   field.Type,
	}
}

// BindFields creates bindings for all fields, preserving declaration order.
// Every field, named or embedded, produces a binding.
func BindFields(fields []Field) []FieldBinding {
	bindings := make([]FieldBinding, 0, len(fields))
	for i, field := range fields {
		bindings = append(bindings, NewFieldBinding(i, field))
	}
	return bindings
}

// embeddedBaseName returns the implicit field name of an embedded type:
// the type name stripped of any pointer star and package qualifier.
func embeddedBaseName(typ string) string {
	name := strings.TrimPrefix(typ, "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
