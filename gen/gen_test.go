package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/derive-go/derive"
)

func generate(t *testing.T, src string) (string, error) {
	t.Helper()
	pkg, err := derive.ParseSource("f.go", src)
	require.NoError(t, err)
	out, err := Generate(pkg, "f_gen.go")
	return string(out), err
}

const pairSource = `package ast

import "github.com/derive-go/derive/token"

// derive:parse
// derive:span
type Pair struct {
	Key   token.Ident
	Value token.Int
}
`

func TestGenerateStructParse(t *testing.T) {
	out, err := generate(t, pairSource)
	require.NoError(t, err)
	require.Contains(t, out, "// Code generated by derivegen. DO NOT EDIT.")
	require.Contains(t, out, "package ast")
	require.Contains(t, out, "func (v *Pair) Parse(lex *lexer.PeekingLexer) error {")
	require.Contains(t, out, "var Key token.Ident")
	require.Contains(t, out, "if err := Key.Parse(lex); err != nil {")
	require.Contains(t, out, "*v = Pair{Key: Key, Value: Value}")
	require.Contains(t, out, "func (v Pair) Peek(lex *lexer.PeekingLexer) bool {")
	require.Contains(t, out, "return (token.Ident{}).Peek(lex)")
}

func TestGenerateStructSpan(t *testing.T) {
	out, err := generate(t, pairSource)
	require.NoError(t, err)
	require.Contains(t, out, "func (v Pair) Span() lexer.Position {")
	require.Contains(t, out, "return v.Key.Span()")
}

const exprSource = `package ast

import "github.com/derive-go/derive/token"

// Expr is a sealed expression node.
//
// derive:parse
// derive:span
type Expr interface{ isExpr() }

// derive:parse
type Num struct {
	Value token.Int
}

func (Num) isExpr() {}

type Neg struct {
	token.Minus
	Num
}

func (Neg) isExpr() {}
`

func TestGenerateEnumParse(t *testing.T) {
	out, err := generate(t, exprSource)
	require.NoError(t, err)
	require.Contains(t, out, "func ParseExpr(lex *lexer.PeekingLexer) (Expr, error) {")
	require.Contains(t, out, "if (token.Int{}).Peek(lex) {")
	require.Contains(t, out, "return Num{Value: Value}, nil")
	require.Contains(t, out, "if (token.Minus{}).Peek(lex) {")
	require.Contains(t, out, "var binding_0 token.Minus")
	require.Contains(t, out, "return Neg{binding_0, binding_1}, nil")
	require.Contains(t, out, `"Error Parsing: Expr, Expected One Of: token.Int, token.Minus"`)
	require.Contains(t, out, "func PeekExpr(lex *lexer.PeekingLexer) bool {")
	// Num carries its own directive and gets a method of its own.
	require.Contains(t, out, "func (v *Num) Parse(lex *lexer.PeekingLexer) error {")
	// Variants are tried in declaration order.
	require.Less(t,
		indexOf(t, out, "token.Int{}).Peek"),
		indexOf(t, out, "token.Minus{}).Peek"))
}

func TestGenerateEnumSpan(t *testing.T) {
	out, err := generate(t, exprSource)
	require.NoError(t, err)
	require.Contains(t, out, "func SpanExpr(n Expr) lexer.Position {")
	require.Contains(t, out, "switch n := n.(type) {")
	require.Contains(t, out, "case Num:")
	require.Contains(t, out, "return n.Value.Span()")
	require.Contains(t, out, "case Neg:")
	require.Contains(t, out, "return n.Minus.Span()")
	require.Contains(t, out, `panic("unhandled Expr variant")`)
}

func TestGenerateNestedEnumField(t *testing.T) {
	out, err := generate(t, `package ast

import "github.com/derive-go/derive/token"

// derive:parse
// derive:span
type Expr interface{ isExpr() }

// derive:parse
type Num struct {
	Value token.Int
}

func (Num) isExpr() {}

// derive:parse
// derive:span
type Group struct {
	Open  token.LParen
	Inner Expr
	Close token.RParen
}
`)
	require.NoError(t, err)
	// Enum-typed fields dispatch through the package-level functions.
	require.Contains(t, out, "Inner, err := ParseExpr(lex)")
	require.Contains(t, out, "*v = Group{Open: Open, Inner: Inner, Close: Close}")
	out2, err := generate(t, `package ast

// derive:parse
type Expr interface{ isExpr() }

// derive:span
type Wrap struct {
	Inner Expr
}

func (Wrap) isExpr() {}
`)
	require.NoError(t, err)
	require.Contains(t, out2, "return SpanExpr(v.Inner)")
}

func TestGenerateUnitStructSpan(t *testing.T) {
	out, err := generate(t, `package ast

// derive:span
type Nil struct{}
`)
	require.NoError(t, err)
	require.Contains(t, out, "func (v Nil) Span() lexer.Position {")
	require.Contains(t, out, "return lexer.Position{}")
}

func TestGenerateParseOnUnion(t *testing.T) {
	_, err := generate(t, `package ast

// derive:parse
type Number interface{ int64 | float64 }
`)
	require.EqualError(t, err, "f.go:4:24: Cannot derive:parse On Union")
}

func TestGenerateUnitStructParse(t *testing.T) {
	out, err := generate(t, `package ast

// derive:parse
type Unit struct{}
`)
	require.NoError(t, err)
	require.Contains(t, out, "*v = Unit{}")
	require.Contains(t, out, "func (v Unit) Peek(lex *lexer.PeekingLexer) bool {")
	require.Contains(t, out, "return false")
}

func TestGenerateParseEmptyEnum(t *testing.T) {
	_, err := generate(t, `package ast

// derive:parse
type Void interface{ isVoid() }
`)
	require.EqualError(t, err, "f.go:4:11: Cannot derive:parse On An Empty Enum. It's Not Constructable At Runtime")
}

func TestGenerateSpanEmptyEnum(t *testing.T) {
	out, err := generate(t, `package ast

// derive:span
type Void interface{ isVoid() }
`)
	require.NoError(t, err)
	require.Contains(t, out, "func SpanVoid(n Void) lexer.Position {")
	require.Contains(t, out, "switch n.(type) {")
	require.Contains(t, out, `panic("unhandled Void variant")`)
}

func TestGenerateParseEmptyVariant(t *testing.T) {
	_, err := generate(t, `package ast

// derive:parse
type Void interface{ isVoid() }

type Nothing struct{}

func (Nothing) isVoid() {}
`)
	require.EqualError(t, err, "f.go:6:6: derive:parse Requires At Least One Field")
}

func TestGenerateDirectiveOnField(t *testing.T) {
	_, err := generate(t, `package ast

import "github.com/derive-go/derive/token"

// derive:parse
type Pair struct {
	// derive:span
	Key token.Ident
}
`)
	require.EqualError(t, err, "f.go:7:2: Attribute derive:span Is Not Allowed At The Field Level")
}

func TestGenerateDirectiveArgs(t *testing.T) {
	_, err := generate(t, `package ast

// derive:parse fast
type Unit struct{}
`)
	require.EqualError(t, err, "f.go:3:1: derive:parse Takes No Arguments")
}

func TestGenerateDuplicateDirective(t *testing.T) {
	_, err := generate(t, `package ast

// derive:parse
// derive:parse
type Unit struct{}
`)
	require.EqualError(t, err, "f.go:4:1: Attribute derive:parse Is Already Configured")
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	i := strings.Index(s, sub)
	require.GreaterOrEqual(t, i, 0, "missing %q", sub)
	return i
}
