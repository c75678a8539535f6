package derive

import "github.com/derive-go/derive/lexer"

// Parser is implemented by types that can parse themselves from a token
// stream. Derived Parse methods implement it, as do all leaf types in the
// token package.
type Parser interface {
	Parse(lex *lexer.PeekingLexer) error
}

// Peeker reports whether a value of the type may start at the next token,
// without consuming input. Enum variant lookahead bottoms out in Peek calls
// on the variant's first field type.
type Peeker interface {
	Peek(lex *lexer.PeekingLexer) bool
}

// Spanner returns a node's representative source position.
type Spanner interface {
	Span() lexer.Position
}
