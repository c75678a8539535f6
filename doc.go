// Package derive models Go type declarations as uniform field and variant
// bindings for derive-style code generation.
//
// The package is the core of the derivegen tool. It scans a package for type
// declarations carrying "derive:" directives in their doc comments,
// classifies each declaration's shape, and exposes the declared fields and
// variants as bindings that generators turn into companion code.
//
// Three shapes are recognised:
//
//   - Structs, whose field layout is Named (ordinary fields), Unnamed (all
//     fields embedded, constructed positionally), or Unit (no fields).
//   - Enums, declared as a sealed interface: an interface type plus variant
//     structs in the same package carrying an "is<Name>()" marker method.
//   - Unions, Go constraint interfaces embedding type union terms (A | B).
//     These are never derivable and are rejected by the shape gate.
//
// A declaration opts in to a derivation with a directive line:
//
//	// Pair is two identifiers separated by a comma.
//	// derive:parse
//	// derive:span
//	type Pair struct {
//		Left  token.Ident
//		Comma token.Comma
//		Right token.Ident
//	}
//
// The bindings layer gives every field a local name usable in generated
// code: named fields reuse their declared name, embedded fields are
// assigned "binding_<index>" by declaration position. StructBinding and
// VariantBinding aggregate those per shape, and Layout.Wrap re-assembles
// fields into composite literal form for the shape.
//
// Generated code runs against the lexer and token subpackages; the Parser,
// Peeker and Spanner interfaces in this package are the contracts generated
// methods implement.
package derive
