package gen

import (
	"fmt"
	"io"
	"strings"

	"github.com/derive-go/derive"
)

func genParse(w io.Writer, pkg *derive.Package, decl *derive.Decl) error {
	se, err := derive.StructOrEnum(decl, "parse")
	if err != nil {
		return err
	}
	if se.Struct != nil {
		return parseStruct(w, pkg, decl.Name, se.Struct)
	}
	return parseEnum(w, pkg, decl.Name, se.Enum)
}

// parseStruct renders a Parse method consuming the fields in declaration
// order, plus a Peek method derived from the first field.
func parseStruct(w io.Writer, pkg *derive.Package, name string, s *derive.StructData) error {
	b := derive.BindStruct(s.Fields)
	fmt.Fprintf(w, "\n// Parse reads a %s from lex, consuming its fields in order.\n", name)
	fmt.Fprintf(w, "func (v *%s) Parse(lex *lexer.PeekingLexer) error {\n", name)
	for _, fb := range b.Bindings {
		parseField(w, pkg, fb, "\t", "err")
	}
	fmt.Fprintf(w, "\t*v = %s\n", b.Construct(name))
	fmt.Fprintf(w, "\treturn nil\n")
	fmt.Fprintf(w, "}\n")

	fmt.Fprintf(w, "\n// Peek reports whether a %s can start at the next token.\n", name)
	fmt.Fprintf(w, "func (v %s) Peek(lex *lexer.PeekingLexer) bool {\n", name)
	if len(s.Fields) == 0 {
		fmt.Fprintf(w, "\treturn false\n")
	} else {
		fmt.Fprintf(w, "\treturn %s\n", peekExpr(pkg, s.Fields[0].Type))
	}
	fmt.Fprintf(w, "}\n")
	return nil
}

// parseEnum renders a package-level Parse<Name> function that tries each
// variant in declaration order, committing to the first whose lookahead
// matches, plus a matching Peek<Name>.
func parseEnum(w io.Writer, pkg *derive.Package, name string, e *derive.EnumData) error {
	if len(e.Variants) == 0 {
		return derive.Errorf(e.Pos, "Cannot derive:parse On An Empty Enum. It's Not Constructable At Runtime")
	}
	for _, v := range e.Variants {
		if len(v.Fields) == 0 {
			return derive.Errorf(v.Pos, "derive:parse Requires At Least One Field")
		}
	}

	fmt.Fprintf(w, "\n// Parse%s parses one %s variant. Variants are tried in declaration\n", name, name)
	fmt.Fprintf(w, "// order and the first whose lookahead matches wins.\n")
	fmt.Fprintf(w, "func Parse%s(lex *lexer.PeekingLexer) (%s, error) {\n", name, name)
	for _, v := range e.Variants {
		vb := derive.BindVariant(v)
		fmt.Fprintf(w, "\tif %s {\n", peekExpr(pkg, v.Fields[0].Type))
		for _, fb := range vb.Bindings {
			parseField(w, pkg, fb, "\t\t", "nil, err")
		}
		fmt.Fprintf(w, "\t\treturn %s, nil\n", vb.Pattern())
		fmt.Fprintf(w, "\t}\n")
	}
	fmt.Fprintf(w, "\tt := lex.Peek(0)\n")
	fmt.Fprintf(w, "\treturn nil, lexer.Errorf(t.Pos, %q)\n", expectedOneOf(name, e))
	fmt.Fprintf(w, "}\n")

	fmt.Fprintf(w, "\n// Peek%s reports whether any %s variant can start at the next token.\n", name, name)
	fmt.Fprintf(w, "func Peek%s(lex *lexer.PeekingLexer) bool {\n", name)
	var peeks []string
	for _, v := range e.Variants {
		peeks = append(peeks, peekExpr(pkg, v.Fields[0].Type))
	}
	fmt.Fprintf(w, "\treturn %s\n", strings.Join(peeks, " ||\n\t\t"))
	fmt.Fprintf(w, "}\n")
	return nil
}

// parseField renders the statements parsing a single binding into a local
// variable named after it. errReturn is the return statement body used on
// failure, which differs between methods and variant functions.
func parseField(w io.Writer, pkg *derive.Package, fb derive.FieldBinding, indent, errReturn string) {
	if enumDecl(pkg, fb.Type) != nil {
		fmt.Fprintf(w, "%s%s, err := Parse%s(lex)\n", indent, fb.Name, fb.Type)
		fmt.Fprintf(w, "%sif err != nil {\n", indent)
		fmt.Fprintf(w, "%s\treturn %s\n", indent, errReturn)
		fmt.Fprintf(w, "%s}\n", indent)
		return
	}
	fmt.Fprintf(w, "%svar %s %s\n", indent, fb.Name, fb.Type)
	fmt.Fprintf(w, "%sif err := %s.Parse(lex); err != nil {\n", indent, fb.Name)
	fmt.Fprintf(w, "%s\treturn %s\n", indent, errReturn)
	fmt.Fprintf(w, "%s}\n", indent)
}

// peekExpr renders the lookahead test for a field type: the enum-level
// Peek function for enum types, the value method for everything else.
func peekExpr(pkg *derive.Package, typ string) string {
	if enumDecl(pkg, typ) != nil {
		return fmt.Sprintf("Peek%s(lex)", typ)
	}
	return fmt.Sprintf("(%s{}).Peek(lex)", typ)
}

// expectedOneOf builds the committed-choice failure message from the
// variants' first field types.
func expectedOneOf(name string, e *derive.EnumData) string {
	var buf strings.Builder
	for _, v := range e.Variants {
		if len(v.Fields) == 0 {
			continue
		}
		if buf.Len() == 0 {
			buf.WriteString("Error Parsing: ")
			buf.WriteString(name)
			buf.WriteString(", Expected One Of: ")
		} else {
			buf.WriteString(", ")
		}
		buf.WriteString(v.Fields[0].Type)
	}
	return buf.String()
}
