package derive

// Layout classifies a field collection's arrangement.
//
// Used by StructBinding and VariantBinding to decide how generated code
// puts fields back together in composite literals, for construction and
// pattern fragments alike.
type Layout int

const (
	// Unit is a collection with no fields.
	Unit Layout = iota
	// Named fields are ordinary Go fields, constructed with keyed entries.
	Named
	// Unnamed fields are embedded fields, constructed positionally.
	Unnamed
)

func (l Layout) String() string {
	switch l {
	case Unit:
		return "Unit"
	case Named:
		return "Named"
	case Unnamed:
		return "Unnamed"
	}
	return "Unknown"
}

// ClassifyFields infers the Layout of a field collection. The collection is
// homogeneous by construction; extraction rejects mixed named and embedded
// fields before bindings are built.
func ClassifyFields(fields []Field) Layout {
	switch {
	case len(fields) == 0:
		return Unit
	case fields[0].Embedded:
		return Unnamed
	default:
		return Named
	}
}

// Wrap surrounds a fragment in the composite literal delimiters for this
// layout. Go spells every layout with braces; keyed entries are set off
// with spaces, positional entries are packed.
func (l Layout) Wrap(inner string) string {
	switch l {
	case Named:
		return "{ " + inner + " }"
	case Unnamed:
		return "{" + inner + "}"
	default:
		return "{}"
	}
}
