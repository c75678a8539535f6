// Package token provides the leaf parse nodes that derived parsers bottom
// out in.
//
// Each type captures one token from a lexer.PeekingLexer and retains its
// source position. All types implement the derive.Parser, derive.Peeker and
// derive.Spanner contracts, which makes them usable as fields of derived
// types and as enum variant lookahead anchors.
package token

import (
	"strconv"

	"github.com/derive-go/derive/lexer"
)

// Ident captures an identifier token.
type Ident struct {
	Value string
	Pos   lexer.Position
}

func (v *Ident) Parse(lex *lexer.PeekingLexer) error {
	t, err := expect(lex, lexer.Ident)
	if err != nil {
		return err
	}
	*v = Ident{Value: t.Value, Pos: t.Pos}
	return nil
}

func (Ident) Peek(lex *lexer.PeekingLexer) bool { return lex.Peek(0).Type == lexer.Ident }

func (v Ident) Span() lexer.Position { return v.Pos }

// Int captures an integer literal token.
type Int struct {
	Value string
	Pos   lexer.Position
}

func (v *Int) Parse(lex *lexer.PeekingLexer) error {
	t, err := expect(lex, lexer.Int)
	if err != nil {
		return err
	}
	*v = Int{Value: t.Value, Pos: t.Pos}
	return nil
}

func (Int) Peek(lex *lexer.PeekingLexer) bool { return lex.Peek(0).Type == lexer.Int }

func (v Int) Span() lexer.Position { return v.Pos }

// Int64 returns the captured literal as an int64.
func (v Int) Int64() (int64, error) {
	return strconv.ParseInt(v.Value, 0, 64)
}

// Float captures a floating point literal token.
type Float struct {
	Value string
	Pos   lexer.Position
}

func (v *Float) Parse(lex *lexer.PeekingLexer) error {
	t, err := expect(lex, lexer.Float)
	if err != nil {
		return err
	}
	*v = Float{Value: t.Value, Pos: t.Pos}
	return nil
}

func (Float) Peek(lex *lexer.PeekingLexer) bool { return lex.Peek(0).Type == lexer.Float }

func (v Float) Span() lexer.Position { return v.Pos }

// Float64 returns the captured literal as a float64.
func (v Float) Float64() (float64, error) {
	return strconv.ParseFloat(v.Value, 64)
}

// String captures a string literal token. Value holds the unquoted text.
type String struct {
	Value string
	Pos   lexer.Position
}

func (v *String) Parse(lex *lexer.PeekingLexer) error {
	t := lex.Peek(0)
	if t.Type != lexer.String && t.Type != lexer.RawString {
		return lexer.Errorf(t.Pos, "unexpected token %q (expected String)", t.Value)
	}
	lex.Next()
	value, err := strconv.Unquote(t.Value)
	if err != nil {
		return lexer.Errorf(t.Pos, "invalid string literal %s", t.Value)
	}
	*v = String{Value: value, Pos: t.Pos}
	return nil
}

func (String) Peek(lex *lexer.PeekingLexer) bool {
	t := lex.Peek(0).Type
	return t == lexer.String || t == lexer.RawString
}

func (v String) Span() lexer.Position { return v.Pos }

func expect(lex *lexer.PeekingLexer, typ rune) (lexer.Token, error) {
	t := lex.Peek(0)
	if t.Type != typ {
		return t, lexer.Errorf(t.Pos, "unexpected token %q (expected %s)", t.Value, lexer.SymbolName(typ))
	}
	return lex.Next(), nil
}
