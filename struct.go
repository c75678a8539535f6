package derive

import "strings"

// StructBinding aggregates the field bindings of one struct-like shape with
// its Layout, so generators can treat structs, tuple shapes and unit shapes
// uniformly.
type StructBinding struct {
	Bindings []FieldBinding
	Layout   Layout
}

// BindStruct builds the binding for a field collection.
func BindStruct(fields []Field) StructBinding {
	return StructBinding{
		Bindings: BindFields(fields),
		Layout:   ClassifyFields(fields),
	}
}

// Entries renders the composite literal entries for this shape, one per
// binding in declaration order: "name: binding" for named fields, the bare
// binding for positional ones.
func (b StructBinding) Entries() string {
	entries := make([]string, 0, len(b.Bindings))
	for _, fb := range b.Bindings {
		if b.Layout == Named {
			entries = append(entries, fb.Member.Sel()+": "+fb.Name)
		} else {
			entries = append(entries, fb.Name)
		}
	}
	return strings.Join(entries, ", ")
}

// Construct renders the full construction literal for a type using this
// shape's bindings, eg. `Pair{ Left: Left, Right: Right }` or
// `Neg{binding_0, binding_1}` or `Nil{}`.
func (b StructBinding) Construct(typeName string) string {
	return typeName + b.Layout.Wrap(b.Entries())
}
