package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexString(t *testing.T) {
	tokens, err := ConsumeAll(LexString("test.src", `hello (world, 42)`))
	require.NoError(t, err)
	values := []string{}
	types := []rune{}
	for _, tok := range tokens {
		values = append(values, tok.Value)
		types = append(types, tok.Type)
	}
	require.Equal(t, []string{"hello", "(", "world", ",", "42", ")", ""}, values)
	require.Equal(t, []rune{Ident, '(', Ident, ',', Int, ')', EOF}, types)
}

func TestLexPositions(t *testing.T) {
	tokens, err := ConsumeAll(LexString("test.src", "a\nbb"))
	require.NoError(t, err)
	require.Equal(t, Position{Filename: "test.src", Offset: 0, Line: 1, Column: 1}, tokens[0].Pos)
	require.Equal(t, Position{Filename: "test.src", Offset: 2, Line: 2, Column: 1}, tokens[1].Pos)
}

func TestPositionString(t *testing.T) {
	require.Equal(t, "f.go:3:7", Position{Filename: "f.go", Line: 3, Column: 7}.String())
	require.Equal(t, "<source>:1:1", Position{Line: 1, Column: 1}.String())
}

func TestSymbolName(t *testing.T) {
	require.Equal(t, "Ident", SymbolName(Ident))
	require.Equal(t, `','`, SymbolName(','))
}
