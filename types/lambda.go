package types

import (
	"errors"
	"io"
)

var ErrUnhashable = errors.New("Hash() is not applicable for lambda")

// Lambda is a closure. It is opaque to this package: it never compares
// equal to anything, itself included, and cannot be hashed or used as a key.
type Lambda struct {
	Params   []Symbol
	Variadic Symbol
	Body     []Expr
	Env      *Env
}

func (l *Lambda) String() string {
	return PrnStr(l)
}

func (l *Lambda) Print(w io.Writer) {
	io.WriteString(w, "#<function>")
}

func (l *Lambda) Hash() (string, error) {
	return "", ErrUnhashable
}

func (l *Lambda) Type() Type {
	return TypeLambda
}

func (*Lambda) expr() {}
