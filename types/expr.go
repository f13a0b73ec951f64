// Package types defines the expression values of the interpreter: what a
// value is, how two values compare and how a value prints.
package types

import (
	"fmt"
	"io"
	"strings"
)

// Expr is any evaluable form. The set of implementations is closed.
type Expr interface {
	fmt.Stringer
	// Write canonical form into writer
	Print(io.Writer)
	Hash() (string, error)
	Type() Type
	expr()
}

var (
	_ Expr = Symbol("")
	_ Expr = Keyword("")
	_ Expr = Number(0)
	_ Expr = Bool(false)
	_ Expr = Str("")
	_ Expr = (*List)(nil)
	_ Expr = (*Vector)(nil)
	_ Expr = (*Map)(nil)
	_ Expr = Nil{}
	_ Expr = (*Lambda)(nil)
)

// PrnStr renders e in canonical form.
func PrnStr(e Expr) string {
	b := &strings.Builder{}
	e.Print(b)
	return b.String()
}

// Truthy reports whether e counts as true in a condition.
// Only nil and false are falsy.
func Truthy(e Expr) bool {
	switch v := e.(type) {
	case Nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

type Nil struct{}

func (Nil) String() string {
	return "nil"
}

func (Nil) Hash() (string, error) {
	return "{Nil}", nil
}

func (Nil) Print(w io.Writer) {
	io.WriteString(w, "nil")
}

func (Nil) Type() Type {
	return TypeNil
}

func (Nil) expr() {}
