package derive

// VariantBinding pairs an enum variant's name with the binding for its
// fields, letting generators treat variants like structs.
type VariantBinding struct {
	Name string
	StructBinding
}

// BindVariant builds the binding for one enum variant.
func BindVariant(v Variant) VariantBinding {
	return VariantBinding{
		Name:          v.Name,
		StructBinding: BindStruct(v.Fields),
	}
}

// Pattern renders the variant's binding form as a construction fragment,
// eg. `Lit{ Value: Value }`, `Neg{binding_0, binding_1}` or `Nil{}`. This
// is the exact shape consumed by match-arm and construction emission.
func (v VariantBinding) Pattern() string {
	return v.Construct(v.Name)
}
