package lexer

// PeekingLexer supports arbitrary lookahead over a token stream as well as
// cloning.
type PeekingLexer struct {
	cursor int
	eof    Token
	tokens []Token
	elide  map[rune]bool
}

// Upgrade a Lexer to a PeekingLexer with arbitrary lookahead.
//
// "elide" is a slice of token types to skip during processing.
func Upgrade(lex Lexer, elide ...rune) (*PeekingLexer, error) {
	r := &PeekingLexer{
		elide: make(map[rune]bool, len(elide)),
	}
	for _, rn := range elide {
		r.elide[rn] = true
	}
	for {
		t, err := lex.Next()
		if err != nil {
			return r, err
		}
		if t.EOF() {
			r.eof = t
			break
		}
		if r.elide[t.Type] {
			continue
		}
		r.tokens = append(r.tokens, t)
	}
	return r, nil
}

// Cursor position in the token stream, excluding elided tokens.
func (p *PeekingLexer) Cursor() int {
	return p.cursor
}

// Next consumes and returns the next token.
func (p *PeekingLexer) Next() Token {
	if p.cursor < len(p.tokens) {
		p.cursor++
		return p.tokens[p.cursor-1]
	}
	return p.eof
}

// Peek ahead at the n+1th token. eg. Peek(0) will peek at the next token.
func (p *PeekingLexer) Peek(n int) Token {
	if p.cursor+n < len(p.tokens) {
		return p.tokens[p.cursor+n]
	}
	return p.eof
}

// Clone creates a clone of this PeekingLexer at its current token.
//
// The parent and clone are completely independent.
func (p *PeekingLexer) Clone() *PeekingLexer {
	clone := *p
	return &clone
}
