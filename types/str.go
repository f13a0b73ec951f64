package types

import (
	"fmt"
	"io"
)

type Str string

func (s Str) String() string {
	return PrnStr(s)
}

func (s Str) Hash() (string, error) {
	return fmt.Sprintf("{Str: %q}", string(s)), nil
}

// Print wraps the contents in double quotes without escaping.
func (s Str) Print(w io.Writer) {
	io.WriteString(w, `"`+string(s)+`"`)
}

func (s Str) Type() Type {
	return TypeStr
}

func (Str) expr() {}
