package derive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/derive-go/derive/lexer"
)

type testAttr struct {
	args string
}

func (t *testAttr) Namespace() string       { return "parse" }
func (t *testAttr) Parse(args string) error { t.args = args; return nil }

func dirAt(ns string, line int) Directive {
	return Directive{Ns: ns, Pos: lexer.Position{Filename: "t.go", Line: line, Column: 1}}
}

func TestFindAttrAbsent(t *testing.T) {
	attr := &testAttr{}
	found, err := FindAttr([]Directive{dirAt("span", 1)}, attr)
	require.NoError(t, err)
	require.False(t, found)
}

func TestFindAttrPresent(t *testing.T) {
	attr := &testAttr{}
	found, err := FindAttr([]Directive{{Ns: "parse", Args: "x"}}, attr)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "x", attr.args)
}

// A duplicate namespace fails at the second occurrence's position.
func TestFindAttrDuplicate(t *testing.T) {
	attr := &testAttr{}
	_, err := FindAttr([]Directive{dirAt("parse", 1), dirAt("parse", 2)}, attr)
	require.EqualError(t, err, "t.go:2:1: Attribute derive:parse Is Already Configured")
}

func TestRequireAttr(t *testing.T) {
	attr := &testAttr{}
	pos := lexer.Position{Filename: "t.go", Line: 9, Column: 6}
	err := RequireAttr([]Directive{dirAt("span", 1)}, attr, pos)
	require.EqualError(t, err, "t.go:9:6: Attribute derive:parse Is Required")

	require.NoError(t, RequireAttr([]Directive{dirAt("parse", 1)}, attr, pos))
}

func TestForbidAttr(t *testing.T) {
	require.NoError(t, ForbidAttr([]Directive{dirAt("span", 1)}, "parse", LevelField))

	err := ForbidAttr([]Directive{dirAt("parse", 4)}, "parse", LevelField)
	require.EqualError(t, err, "t.go:4:1: Attribute derive:parse Is Not Allowed At The Field Level")

	err = ForbidAttr([]Directive{dirAt("parse", 4)}, "parse", LevelVariant)
	require.ErrorContains(t, err, "At The Variant Level")
}

func TestParseDirectiveLine(t *testing.T) {
	d, ok := parseDirectiveLine(" derive:parse", lexer.Position{})
	require.True(t, ok)
	require.Equal(t, "parse", d.Ns)
	require.Equal(t, "", d.Args)

	d, ok = parseDirectiveLine("derive:span with args", lexer.Position{})
	require.True(t, ok)
	require.Equal(t, "span", d.Ns)
	require.Equal(t, "with args", d.Args)

	_, ok = parseDirectiveLine("just a doc comment", lexer.Position{})
	require.False(t, ok)

	_, ok = parseDirectiveLine("derive: parse", lexer.Position{})
	require.False(t, ok)
}
