package token

import "github.com/derive-go/derive/lexer"

func punct(lex *lexer.PeekingLexer, r rune, pos *lexer.Position) error {
	t := lex.Peek(0)
	if t.Type != r {
		return lexer.Errorf(t.Pos, "unexpected token %q (expected %q)", t.Value, r)
	}
	lex.Next()
	*pos = t.Pos
	return nil
}

// Comma captures a "," token.
type Comma struct{ Pos lexer.Position }

func (v *Comma) Parse(lex *lexer.PeekingLexer) error { return punct(lex, ',', &v.Pos) }
func (Comma) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == ',' }
func (v Comma) Span() lexer.Position                 { return v.Pos }

// Colon captures a ":" token.
type Colon struct{ Pos lexer.Position }

func (v *Colon) Parse(lex *lexer.PeekingLexer) error { return punct(lex, ':', &v.Pos) }
func (Colon) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == ':' }
func (v Colon) Span() lexer.Position                 { return v.Pos }

// Semicolon captures a ";" token.
type Semicolon struct{ Pos lexer.Position }

func (v *Semicolon) Parse(lex *lexer.PeekingLexer) error { return punct(lex, ';', &v.Pos) }
func (Semicolon) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == ';' }
func (v Semicolon) Span() lexer.Position                 { return v.Pos }

// Dot captures a "." token.
type Dot struct{ Pos lexer.Position }

func (v *Dot) Parse(lex *lexer.PeekingLexer) error { return punct(lex, '.', &v.Pos) }
func (Dot) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == '.' }
func (v Dot) Span() lexer.Position                 { return v.Pos }

// Eq captures a "=" token.
type Eq struct{ Pos lexer.Position }

func (v *Eq) Parse(lex *lexer.PeekingLexer) error { return punct(lex, '=', &v.Pos) }
func (Eq) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == '=' }
func (v Eq) Span() lexer.Position                 { return v.Pos }

// Plus captures a "+" token.
type Plus struct{ Pos lexer.Position }

func (v *Plus) Parse(lex *lexer.PeekingLexer) error { return punct(lex, '+', &v.Pos) }
func (Plus) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == '+' }
func (v Plus) Span() lexer.Position                 { return v.Pos }

// Minus captures a "-" token.
type Minus struct{ Pos lexer.Position }

func (v *Minus) Parse(lex *lexer.PeekingLexer) error { return punct(lex, '-', &v.Pos) }
func (Minus) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == '-' }
func (v Minus) Span() lexer.Position                 { return v.Pos }

// Star captures a "*" token.
type Star struct{ Pos lexer.Position }

func (v *Star) Parse(lex *lexer.PeekingLexer) error { return punct(lex, '*', &v.Pos) }
func (Star) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == '*' }
func (v Star) Span() lexer.Position                 { return v.Pos }

// Slash captures a "/" token.
type Slash struct{ Pos lexer.Position }

func (v *Slash) Parse(lex *lexer.PeekingLexer) error { return punct(lex, '/', &v.Pos) }
func (Slash) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == '/' }
func (v Slash) Span() lexer.Position                 { return v.Pos }

// LParen captures a "(" token.
type LParen struct{ Pos lexer.Position }

func (v *LParen) Parse(lex *lexer.PeekingLexer) error { return punct(lex, '(', &v.Pos) }
func (LParen) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == '(' }
func (v LParen) Span() lexer.Position                 { return v.Pos }

// RParen captures a ")" token.
type RParen struct{ Pos lexer.Position }

func (v *RParen) Parse(lex *lexer.PeekingLexer) error { return punct(lex, ')', &v.Pos) }
func (RParen) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == ')' }
func (v RParen) Span() lexer.Position                 { return v.Pos }

// LBrace captures a "{" token.
type LBrace struct{ Pos lexer.Position }

func (v *LBrace) Parse(lex *lexer.PeekingLexer) error { return punct(lex, '{', &v.Pos) }
func (LBrace) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == '{' }
func (v LBrace) Span() lexer.Position                 { return v.Pos }

// RBrace captures a "}" token.
type RBrace struct{ Pos lexer.Position }

func (v *RBrace) Parse(lex *lexer.PeekingLexer) error { return punct(lex, '}', &v.Pos) }
func (RBrace) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == '}' }
func (v RBrace) Span() lexer.Position                 { return v.Pos }

// LBracket captures a "[" token.
type LBracket struct{ Pos lexer.Position }

func (v *LBracket) Parse(lex *lexer.PeekingLexer) error { return punct(lex, '[', &v.Pos) }
func (LBracket) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == '[' }
func (v LBracket) Span() lexer.Position                 { return v.Pos }

// RBracket captures a "]" token.
type RBracket struct{ Pos lexer.Position }

func (v *RBracket) Parse(lex *lexer.PeekingLexer) error { return punct(lex, ']', &v.Pos) }
func (RBracket) Peek(lex *lexer.PeekingLexer) bool      { return lex.Peek(0).Type == ']' }
func (v RBracket) Span() lexer.Position                 { return v.Pos }
