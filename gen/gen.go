// Package gen renders companion code for decorated declarations: Parse
// methods and parse functions for derive:parse, Span methods and span
// functions for derive:span.
//
// Output is assembled with a template header followed by per-declaration
// fragments, then run through goimports so unused imports from the source
// package are pruned and the result is gofmt-clean.
package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/derive-go/derive"
)

const lexerPath = `"github.com/derive-go/derive/lexer"`

var headerTmpl = template.Must(template.New("header").Parse(`// Code generated by derivegen. DO NOT EDIT.

package {{.Package}}

import (
	{{.LexerPath}}
{{- range .Imports}}
	{{.}}
{{- end}}
)
`))

// parseAttr marks a declaration for Parse generation. It takes no
// arguments.
type parseAttr struct{}

func (parseAttr) Namespace() string { return "parse" }

func (parseAttr) Parse(args string) error {
	if args != "" {
		return fmt.Errorf("derive:parse Takes No Arguments")
	}
	return nil
}

// spanAttr marks a declaration for Span generation. It takes no arguments.
type spanAttr struct{}

func (spanAttr) Namespace() string { return "span" }

func (spanAttr) Parse(args string) error {
	if args != "" {
		return fmt.Errorf("derive:span Takes No Arguments")
	}
	return nil
}

// Generate renders the companion file for pkg. filename is the intended
// output path, used only to give the formatter resolution context.
func Generate(pkg *derive.Package, filename string) ([]byte, error) {
	var buf bytes.Buffer
	err := headerTmpl.Execute(&buf, struct {
		Package   string
		LexerPath string
		Imports   []string
	}{pkg.Name, lexerPath, headerImports(pkg)})
	if err != nil {
		return nil, err
	}
	for _, decl := range pkg.Decls {
		if err := generateDecl(&buf, pkg, decl); err != nil {
			return nil, err
		}
	}
	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

func headerImports(pkg *derive.Package) []string {
	var out []string
	for _, imp := range pkg.Imports {
		if imp == lexerPath {
			continue
		}
		out = append(out, imp)
	}
	return out
}

func generateDecl(buf *bytes.Buffer, pkg *derive.Package, decl *derive.Decl) error {
	if err := checkPlacement(decl); err != nil {
		return err
	}
	var pa parseAttr
	found, err := derive.FindAttr(decl.Directives, &pa)
	if err != nil {
		return err
	}
	if found {
		if err := genParse(buf, pkg, decl); err != nil {
			return err
		}
	}
	var sa spanAttr
	found, err = derive.FindAttr(decl.Directives, &sa)
	if err != nil {
		return err
	}
	if found {
		if err := genSpan(buf, pkg, decl); err != nil {
			return err
		}
	}
	return nil
}

// checkPlacement rejects parse and span directives on fields. They only
// mean something on the declaration itself.
func checkPlacement(decl *derive.Decl) error {
	forbid := func(dirs []derive.Directive) error {
		if err := derive.ForbidAttr(dirs, "parse", derive.LevelField); err != nil {
			return err
		}
		return derive.ForbidAttr(dirs, "span", derive.LevelField)
	}
	switch decl.Kind {
	case derive.KindStruct:
		for _, f := range decl.Struct.Fields {
			if err := forbid(f.Directives); err != nil {
				return err
			}
		}
	case derive.KindEnum:
		for _, v := range decl.Enum.Variants {
			for _, f := range v.Fields {
				if err := forbid(f.Directives); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// enumDecl reports whether typ names an enum declared in pkg. Enum-typed
// fields dispatch through the enum's package-level functions rather than
// methods.
func enumDecl(pkg *derive.Package, typ string) *derive.Decl {
	for _, decl := range pkg.Decls {
		if decl.Name == typ && decl.Kind == derive.KindEnum {
			return decl
		}
	}
	return nil
}
