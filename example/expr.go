// Package example holds a small expression grammar exercising the
// generator end to end. The companion file derive_gen.go is committed so
// the package builds without running derivegen first.
package example

import "github.com/derive-go/derive/token"

//go:generate go run github.com/derive-go/derive/cmd/derivegen

// Expr is a sealed expression node.
//
// derive:parse
// derive:span
type Expr interface{ isExpr() }

// Num is an integer literal.
//
// derive:parse
// derive:span
type Num struct {
	Value token.Int
}

func (Num) isExpr() {}

// Str is a string literal.
//
// derive:parse
// derive:span
type Str struct {
	Value token.String
}

func (Str) isExpr() {}

// Ref names a variable.
//
// derive:parse
// derive:span
type Ref struct {
	Name token.Ident
}

func (Ref) isExpr() {}

// Neg is a negated integer literal.
//
// derive:span
type Neg struct {
	token.Minus
	Num
}

func (Neg) isExpr() {}

// Group is a parenthesised subexpression.
//
// derive:span
type Group struct {
	Open  token.LParen
	Inner Expr
	Close token.RParen
}

func (Group) isExpr() {}

// Assign binds a name to an expression. It is not an Expr variant.
//
// derive:parse
// derive:span
type Assign struct {
	Name  token.Ident
	Eq    token.Eq
	Value Expr
}
