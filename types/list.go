package types

import (
	"fmt"
	"io"
	"strings"

	"github.com/biutthapa/doodle/seq"
)

type List struct {
	Items []Expr
}

func NewList(items ...Expr) *List {
	return &List{Items: copyItems(items)}
}

func (l *List) String() string {
	return PrnStr(l)
}

func (l *List) Print(w io.Writer) {
	printItems(w, "(", l.Items, ")")
}

func (l *List) Hash() (string, error) {
	return hashItems("{List:", l.Items)
}

func (l *List) Type() Type {
	return TypeList
}

func (*List) expr() {}

func (l *List) Len() int {
	return len(l.Items)
}

func (l *List) Empty() bool {
	return len(l.Items) == 0
}

// First is car.
func (l *List) First() (Expr, bool) {
	return seq.First(l.Items)
}

// Rest is cdr: a new list without the head.
func (l *List) Rest() *List {
	return &List{Items: seq.Rest(l.Items)}
}

func (l *List) Last() (Expr, bool) {
	return seq.Last(l.Items)
}

type Vector struct {
	Items []Expr
}

func NewVector(items ...Expr) *Vector {
	return &Vector{Items: copyItems(items)}
}

func (v *Vector) String() string {
	return PrnStr(v)
}

func (v *Vector) Print(w io.Writer) {
	printItems(w, "[", v.Items, "]")
}

func (v *Vector) Hash() (string, error) {
	return hashItems("{Vector:", v.Items)
}

func (v *Vector) Type() Type {
	return TypeVector
}

func (*Vector) expr() {}

func (v *Vector) Len() int {
	return len(v.Items)
}

func (v *Vector) Empty() bool {
	return len(v.Items) == 0
}

func (v *Vector) First() (Expr, bool) {
	return seq.First(v.Items)
}

func (v *Vector) Rest() *Vector {
	return &Vector{Items: seq.Rest(v.Items)}
}

func (v *Vector) Last() (Expr, bool) {
	return seq.Last(v.Items)
}

func copyItems(items []Expr) []Expr {
	res := make([]Expr, len(items))
	copy(res, items)
	return res
}

func printItems(w io.Writer, open string, items []Expr, end string) {
	io.WriteString(w, open)
	for i, item := range items {
		if i != 0 {
			io.WriteString(w, " ")
		}
		item.Print(w)
	}
	io.WriteString(w, end)
}

func hashItems(prefix string, items []Expr) (string, error) {
	b := &strings.Builder{}
	io.WriteString(b, prefix)
	for _, item := range items {
		hash, err := item.Hash()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(b, " %v", hash)
	}
	io.WriteString(b, "}")
	return b.String(), nil
}
