package types

import (
	"fmt"
	"io"
	"strconv"
)

type Symbol string

func (s Symbol) String() string {
	return string(s)
}

func (s Symbol) Hash() (string, error) {
	return fmt.Sprintf("{Symbol: %q}", string(s)), nil
}

func (s Symbol) Print(w io.Writer) {
	io.WriteString(w, string(s))
}

func (s Symbol) Type() Type {
	return TypeSymbol
}

func (Symbol) expr() {}

// Keyword holds its name without the leading colon.
type Keyword string

func (k Keyword) String() string {
	return ":" + string(k)
}

func (k Keyword) Hash() (string, error) {
	return fmt.Sprintf("{Keyword: %q}", string(k)), nil
}

func (k Keyword) Print(w io.Writer) {
	io.WriteString(w, ":"+string(k))
}

func (k Keyword) Type() Type {
	return TypeKeyword
}

func (Keyword) expr() {}

type Number int64

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (n Number) Hash() (string, error) {
	return fmt.Sprintf("{Number: %d}", int64(n)), nil
}

func (n Number) Print(w io.Writer) {
	io.WriteString(w, strconv.FormatInt(int64(n), 10))
}

func (n Number) Type() Type {
	return TypeNumber
}

func (Number) expr() {}
