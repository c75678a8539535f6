// Package lexer provides the token stream that derived parsers consume.
//
// The default lexer is based on text/scanner and produces Go-compatible
// tokens: identifiers, integers, floats, strings, and single-rune
// punctuation. Derived Parse methods operate on a PeekingLexer, which
// supports arbitrary lookahead over the token stream.
package lexer

import (
	"fmt"
	"io"
	"text/scanner"
)

// Symbolic token types produced by the default lexer. Punctuation tokens use
// the rune itself as their type.
const (
	EOF       rune = scanner.EOF
	Ident     rune = scanner.Ident
	Int       rune = scanner.Int
	Float     rune = scanner.Float
	Char      rune = scanner.Char
	String    rune = scanner.String
	RawString rune = scanner.RawString
	Comment   rune = scanner.Comment
)

// symbolNames maps token types to the names used in diagnostics.
var symbolNames = map[rune]string{
	EOF:       "EOF",
	Ident:     "Ident",
	Int:       "Int",
	Float:     "Float",
	Char:      "Char",
	String:    "String",
	RawString: "RawString",
	Comment:   "Comment",
}

// SymbolName returns a human-readable name for a token type.
func SymbolName(t rune) string {
	if name, ok := symbolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("%q", t)
}

// Definition is the main entry point for lexing.
type Definition interface {
	// Symbols returns a map of symbolic names to the corresponding
	// pseudo-runes for those symbols. This is the same approach as used by
	// text/scanner.
	Symbols() map[string]rune
	// Lex an io.Reader.
	Lex(filename string, r io.Reader) (Lexer, error)
}

// A Lexer returns tokens from a source.
type Lexer interface {
	// Next consumes and returns the next token.
	Next() (Token, error)
}

// Position of a token.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		filename = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// A Token returned by a Lexer.
type Token struct {
	// Type of token. This is the value keyed by symbol as returned by
	// Definition.Symbols().
	Type  rune
	Value string
	Pos   Position
}

func (t Token) EOF() bool {
	return t.Type == EOF
}

func (t Token) String() string {
	return t.Value
}

// ConsumeAll reads all tokens from a Lexer.
func ConsumeAll(lexer Lexer) ([]Token, error) {
	tokens := []Token{}
	for {
		token, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.EOF() {
			return tokens, nil
		}
	}
}
