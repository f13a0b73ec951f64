package types

import "io"

type Bool bool

func (i Bool) String() string {
	return PrnStr(i)
}

func (i Bool) Hash() (string, error) {
	if bool(i) {
		return "{Bool: 'T}", nil
	}
	return "{Bool: 'F}", nil
}

func (i Bool) Print(w io.Writer) {
	if bool(i) {
		io.WriteString(w, "true")
	} else {
		io.WriteString(w, "false")
	}
}

func (i Bool) Type() Type {
	return TypeBool
}

func (Bool) expr() {}
