package derive

// StructEnum is a declaration narrowed to the two derivable shapes. Exactly
// one of Struct or Enum is set.
type StructEnum struct {
	Struct *StructData
	Enum   *EnumData
}

// StructOrEnum narrows a declaration to a struct or enum shape, rejecting
// unions. The derivation name appears only in the diagnostic.
func StructOrEnum(decl *Decl, derivation string) (StructEnum, error) {
	switch decl.Kind {
	case KindStruct:
		return StructEnum{Struct: decl.Struct}, nil
	case KindEnum:
		return StructEnum{Enum: decl.Enum}, nil
	default:
		return StructEnum{}, Errorf(decl.Union.Pos, "Cannot derive:%s On Union", derivation)
	}
}

// StructOnly narrows a declaration to a struct shape.
func StructOnly(decl *Decl, derivation string) (*StructData, error) {
	switch decl.Kind {
	case KindStruct:
		return decl.Struct, nil
	case KindEnum:
		return nil, Errorf(decl.Enum.Pos, "Cannot derive:%s On Enum", derivation)
	default:
		return nil, Errorf(decl.Union.Pos, "Cannot derive:%s On Union", derivation)
	}
}

// EnumOnly narrows a declaration to an enum shape.
func EnumOnly(decl *Decl, derivation string) (*EnumData, error) {
	switch decl.Kind {
	case KindEnum:
		return decl.Enum, nil
	case KindStruct:
		return nil, Errorf(decl.Struct.Pos, "Cannot derive:%s On Struct", derivation)
	default:
		return nil, Errorf(decl.Union.Pos, "Cannot derive:%s On Union", derivation)
	}
}
