package gen

import (
	"fmt"
	"io"

	"github.com/derive-go/derive"
)

func genSpan(w io.Writer, pkg *derive.Package, decl *derive.Decl) error {
	se, err := derive.StructOrEnum(decl, "span")
	if err != nil {
		return err
	}
	if se.Struct != nil {
		spanStruct(w, pkg, decl.Name, se.Struct)
		return nil
	}
	spanEnum(w, pkg, decl.Name, se.Enum)
	return nil
}

// spanStruct renders a Span method delegating to the first field, or the
// zero position for unit structs.
func spanStruct(w io.Writer, pkg *derive.Package, name string, s *derive.StructData) {
	b := derive.BindStruct(s.Fields)
	fmt.Fprintf(w, "\n// Span returns the source position of %s's first field.\n", name)
	fmt.Fprintf(w, "func (v %s) Span() lexer.Position {\n", name)
	if len(b.Bindings) == 0 {
		fmt.Fprintf(w, "\treturn lexer.Position{}\n")
	} else {
		fmt.Fprintf(w, "\treturn %s\n", spanExpr(pkg, "v."+b.Bindings[0].Member.Sel(), b.Bindings[0].Type))
	}
	fmt.Fprintf(w, "}\n")
}

// spanEnum renders a package-level Span<Name> function switching over the
// variants.
func spanEnum(w io.Writer, pkg *derive.Package, name string, e *derive.EnumData) {
	fmt.Fprintf(w, "\n// Span%s returns the source position of a %s variant.\n", name, name)
	fmt.Fprintf(w, "func Span%s(n %s) lexer.Position {\n", name, name)
	bind := false
	for _, v := range e.Variants {
		if len(v.Fields) > 0 {
			bind = true
		}
	}
	if bind {
		fmt.Fprintf(w, "\tswitch n := n.(type) {\n")
	} else {
		fmt.Fprintf(w, "\tswitch n.(type) {\n")
	}
	for _, v := range e.Variants {
		vb := derive.BindVariant(v)
		fmt.Fprintf(w, "\tcase %s:\n", v.Name)
		if len(vb.Bindings) == 0 {
			fmt.Fprintf(w, "\t\treturn lexer.Position{}\n")
		} else {
			fmt.Fprintf(w, "\t\treturn %s\n", spanExpr(pkg, "n."+vb.Bindings[0].Member.Sel(), vb.Bindings[0].Type))
		}
	}
	fmt.Fprintf(w, "\t}\n")
	fmt.Fprintf(w, "\tpanic(\"unhandled %s variant\")\n", name)
	fmt.Fprintf(w, "}\n")
}

// spanExpr renders the span of a field selector: the enum-level Span
// function for enum-typed fields, the value method otherwise.
func spanExpr(pkg *derive.Package, sel, typ string) string {
	if enumDecl(pkg, typ) != nil {
		return fmt.Sprintf("Span%s(%s)", typ, sel)
	}
	return sel + ".Span()"
}
