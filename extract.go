package derive

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/derive-go/derive/lexer"
)

// ParsePackage scans the Go files of one package directory and extracts the
// declarations carrying derive: directives.
//
// Files are walked in sorted name order, which defines declaration order
// across files. Test files and generated files are skipped.
func ParsePackage(dir string) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var filenames []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		filenames = append(filenames, filepath.Join(dir, name))
	}
	sort.Strings(filenames)
	return ParseFiles(filenames)
}

// ParseFiles extracts the declaration model from the given files, which
// must belong to one package. Order is preserved as given.
func ParseFiles(filenames []string) (*Package, error) {
	e := &extractor{fset: token.NewFileSet()}
	for _, filename := range filenames {
		file, err := parser.ParseFile(e.fset, filename, nil, parser.ParseComments)
		if err != nil {
			return nil, err
		}
		if ast.IsGenerated(file) {
			continue
		}
		e.files = append(e.files, file)
	}
	return e.extract()
}

// ParseSource extracts the declaration model from a single in-memory file.
func ParseSource(filename, src string) (*Package, error) {
	e := &extractor{fset: token.NewFileSet()}
	file, err := parser.ParseFile(e.fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	e.files = append(e.files, file)
	return e.extract()
}

type extractor struct {
	fset  *token.FileSet
	files []*ast.File

	// typeDecls in declaration order, directive-carrying or not; structs
	// without directives may still be enum variants.
	typeDecls []*typeDecl
	// methods maps receiver type name to its declared method names.
	methods map[string]map[string]lexer.Position
}

type typeDecl struct {
	name       string
	namePos    lexer.Position
	directives []Directive
	spec       *ast.TypeSpec
}

func (e *extractor) pos(p token.Pos) lexer.Position {
	return lexer.Position(e.fset.Position(p))
}

func (e *extractor) extract() (*Package, error) {
	if len(e.files) == 0 {
		return nil, fmt.Errorf("no source files to scan")
	}
	e.methods = map[string]map[string]lexer.Position{}
	for _, file := range e.files {
		e.collectFile(file)
	}

	pkg := &Package{Name: e.files[0].Name.Name}
	seen := map[string]bool{}
	for _, file := range e.files {
		for _, spec := range file.Imports {
			imp := spec.Path.Value
			if spec.Name != nil {
				imp = spec.Name.Name + " " + imp
			}
			if seen[imp] {
				continue
			}
			seen[imp] = true
			pkg.Imports = append(pkg.Imports, imp)
		}
	}
	for _, td := range e.typeDecls {
		if len(td.directives) == 0 {
			continue
		}
		decl, err := e.buildDecl(td)
		if err != nil {
			return nil, err
		}
		pkg.Decls = append(pkg.Decls, decl)
	}
	return pkg, nil
}

func (e *extractor) collectFile(file *ast.File) {
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				continue
			}
			for _, spec := range decl.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil {
					doc = decl.Doc
				}
				e.typeDecls = append(e.typeDecls, &typeDecl{
					name:       ts.Name.Name,
					namePos:    e.pos(ts.Name.Pos()),
					directives: e.directives(doc),
					spec:       ts,
				})
			}
		case *ast.FuncDecl:
			if decl.Recv == nil || len(decl.Recv.List) != 1 {
				continue
			}
			recv := receiverName(decl.Recv.List[0].Type)
			if recv == "" {
				continue
			}
			if e.methods[recv] == nil {
				e.methods[recv] = map[string]lexer.Position{}
			}
			e.methods[recv][decl.Name.Name] = e.pos(decl.Name.Pos())
		}
	}
}

func receiverName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

// directives extracts derive: lines from a doc comment, one Directive per
// matching line, at that line's position.
func (e *extractor) directives(doc *ast.CommentGroup) []Directive {
	if doc == nil {
		return nil
	}
	var dirs []Directive
	for _, comment := range doc.List {
		text, ok := strings.CutPrefix(comment.Text, "//")
		if !ok {
			continue
		}
		if d, ok := parseDirectiveLine(text, e.pos(comment.Pos())); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (e *extractor) buildDecl(td *typeDecl) (*Decl, error) {
	decl := &Decl{
		Name:       td.name,
		NamePos:    td.namePos,
		Directives: td.directives,
	}
	switch t := td.spec.Type.(type) {
	case *ast.StructType:
		fields, err := e.extractFields(t.Fields)
		if err != nil {
			return nil, err
		}
		decl.Kind = KindStruct
		decl.Struct = &StructData{Pos: e.pos(t.Struct), Fields: fields}
	case *ast.InterfaceType:
		if pos, ok := unionPos(t); ok {
			decl.Kind = KindUnion
			decl.Union = &UnionData{Pos: e.pos(pos)}
			return decl, nil
		}
		variants, err := e.extractVariants(td.name)
		if err != nil {
			return nil, err
		}
		decl.Kind = KindEnum
		decl.Enum = &EnumData{Pos: e.pos(t.Interface), Variants: variants}
	default:
		return nil, Errorf(td.namePos, "derive: Directives Are Only Supported On Struct And Interface Types")
	}
	return decl, nil
}

// unionPos reports whether an interface embeds type union terms, making it
// a constraint interface rather than a sealed enum.
func unionPos(it *ast.InterfaceType) (token.Pos, bool) {
	for _, field := range it.Methods.List {
		if len(field.Names) > 0 {
			continue
		}
		switch t := field.Type.(type) {
		case *ast.BinaryExpr:
			if t.Op == token.OR {
				return t.Pos(), true
			}
		case *ast.UnaryExpr:
			if t.Op == token.TILDE {
				return t.Pos(), true
			}
		}
	}
	return token.NoPos, false
}

func (e *extractor) extractFields(list *ast.FieldList) ([]Field, error) {
	var fields []Field
	for _, f := range list.List {
		// Generated code declares each field as a value local and calls its
		// methods; a pointer type would make that a nil-receiver call.
		if star, ok := f.Type.(*ast.StarExpr); ok {
			return nil, Errorf(e.pos(star.Pos()), "Pointer Fields Are Not Supported")
		}
		typ := types.ExprString(f.Type)
		if len(f.Names) == 0 {
			fields = append(fields, Field{
				Type:       typ,
				Embedded:   true,
				Pos:        e.pos(f.Type.Pos()),
				Directives: e.directives(f.Doc),
			})
			continue
		}
		for _, name := range f.Names {
			if name.Name == "_" {
				return nil, Errorf(e.pos(name.Pos()), "Blank Field Names Are Not Supported")
			}
			fields = append(fields, Field{
				Name:       name.Name,
				Type:       typ,
				Pos:        e.pos(name.Pos()),
				Directives: e.directives(f.Doc),
			})
		}
	}
	for i := 1; i < len(fields); i++ {
		if fields[i].Embedded != fields[0].Embedded {
			return nil, Errorf(fields[i].Pos, "Cannot Mix Named And Embedded Fields")
		}
	}
	return fields, nil
}

// extractVariants finds the sealed variants of an enum: the struct types in
// the package declaring an "is<Name>()" marker method, in declaration
// order.
func (e *extractor) extractVariants(enumName string) ([]Variant, error) {
	marker := "is" + enumName
	structs := map[string]bool{}
	var variants []Variant
	for _, td := range e.typeDecls {
		st, ok := td.spec.Type.(*ast.StructType)
		if !ok {
			continue
		}
		structs[td.name] = true
		if _, ok := e.methods[td.name][marker]; !ok {
			continue
		}
		fields, err := e.extractFields(st.Fields)
		if err != nil {
			return nil, err
		}
		variants = append(variants, Variant{
			Name:       td.name,
			Pos:        td.namePos,
			Fields:     fields,
			Directives: td.directives,
		})
	}
	// A marker on anything that is not a package-local struct is a
	// structural violation, not a silently ignored method.
	for recv, methods := range e.methods {
		pos, ok := methods[marker]
		if !ok {
			continue
		}
		if !structs[recv] {
			return nil, Errorf(pos, "Variant %s Of %s Must Be A Struct", recv, enumName)
		}
	}
	return variants, nil
}
