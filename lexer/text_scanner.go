package lexer

import (
	"bytes"
	"io"
	"strings"
	"text/scanner"
)

// TextScannerLexer is a lexer that uses the text/scanner module.
var (
	TextScannerLexer Definition = &defaultDefinition{}

	// DefaultDefinition defines properties for the default lexer.
	DefaultDefinition = TextScannerLexer
)

type defaultDefinition struct{}

func (d *defaultDefinition) Lex(filename string, r io.Reader) (Lexer, error) {
	return Lex(filename, r), nil
}

func (d *defaultDefinition) Symbols() map[string]rune {
	return map[string]rune{
		"EOF":       EOF,
		"Char":      Char,
		"Ident":     Ident,
		"Int":       Int,
		"Float":     Float,
		"String":    String,
		"RawString": RawString,
		"Comment":   Comment,
	}
}

// textScannerLexer is a Lexer based on text/scanner.Scanner.
type textScannerLexer struct {
	scanner  *scanner.Scanner
	filename string
	err      error
}

// Lex an io.Reader with text/scanner.Scanner.
//
// This provides very fast lexing of source code compatible with Go tokens.
func Lex(filename string, r io.Reader) Lexer {
	s := &scanner.Scanner{}
	s.Init(r)
	lexer := &textScannerLexer{
		filename: filename,
		scanner:  s,
	}
	s.Error = func(s *scanner.Scanner, msg string) {
		// Characters past EOF and similar conditions are reported here; the
		// first error wins and surfaces from Next.
		if lexer.err == nil {
			lexer.err = Errorf(Position(s.Pos()), "%s", msg)
		}
	}
	return lexer
}

// LexBytes returns a new default lexer over bytes.
func LexBytes(filename string, b []byte) Lexer {
	return Lex(filename, bytes.NewReader(b))
}

// LexString returns a new default lexer over a string.
func LexString(filename, s string) Lexer {
	return Lex(filename, strings.NewReader(s))
}

func (t *textScannerLexer) Next() (Token, error) {
	typ := t.scanner.Scan()
	text := t.scanner.TokenText()
	pos := Position(t.scanner.Position)
	pos.Filename = t.filename
	if t.err != nil {
		return Token{}, t.err
	}
	return Token{
		Type:  typ,
		Value: text,
		Pos:   pos,
	}, nil
}
