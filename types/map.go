package types

import (
	"fmt"
	"io"
	"strings"

	"github.com/biutthapa/doodle/frame"
)

type Pair struct {
	Key ExprKey
	Val Expr
}

// Map is an ordered sequence of pairs. Key uniqueness is not enforced;
// callers that need it go through Frame.
type Map struct {
	Pairs []Pair
}

func NewMap(pairs ...Pair) *Map {
	res := make([]Pair, len(pairs))
	copy(res, pairs)
	return &Map{Pairs: res}
}

// MapFromFrame builds a map literal from f in frame order.
func MapFromFrame(f frame.Frame[ExprKey, Expr]) *Map {
	pairs := make([]Pair, 0, f.Len())
	f.Each(func(k ExprKey, v Expr) bool {
		pairs = append(pairs, Pair{k, v})
		return true
	})
	return &Map{Pairs: pairs}
}

// NewKeyFrame returns an empty frame keyed by structural key equality.
func NewKeyFrame() frame.Frame[ExprKey, Expr] {
	return frame.NewFunc[ExprKey, Expr](KeyEqual)
}

// Frame views m as a frame. Duplicate keys collapse, the last one wins.
func (m *Map) Frame() frame.Frame[ExprKey, Expr] {
	keys := make([]ExprKey, len(m.Pairs))
	values := make([]Expr, len(m.Pairs))
	for i, p := range m.Pairs {
		keys[i], values[i] = p.Key, p.Val
	}
	// lengths always match
	f, _ := frame.BuildFromFunc(KeyEqual, keys, values)
	return f
}

func (m *Map) String() string {
	return PrnStr(m)
}

func (m *Map) Print(w io.Writer) {
	io.WriteString(w, "{")
	for i, p := range m.Pairs {
		if i != 0 {
			io.WriteString(w, " ")
		}
		io.WriteString(w, p.Key.String())
		io.WriteString(w, " ")
		p.Val.Print(w)
	}
	io.WriteString(w, "}")
}

func (m *Map) Hash() (string, error) {
	b := &strings.Builder{}
	io.WriteString(b, "{Map:")
	for _, p := range m.Pairs {
		kh, err := ToExpr(p.Key).Hash()
		if err != nil {
			return "", err
		}
		vh, err := p.Val.Hash()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(b, " %v %v", kh, vh)
	}
	io.WriteString(b, "}")
	return b.String(), nil
}

func (m *Map) Type() Type {
	return TypeMap
}

func (*Map) expr() {}

func (m *Map) Len() int {
	return len(m.Pairs)
}
