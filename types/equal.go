package types

import "hash/fnv"

// Equal compares two values structurally. Lambdas are never equal to
// anything, themselves included.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case Keyword:
		y, ok := b.(Keyword)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case Nil:
		_, ok := b.(Nil)
		return ok
	case *List:
		y, ok := b.(*List)
		return ok && equalItems(x.Items, y.Items)
	case *Vector:
		y, ok := b.(*Vector)
		return ok && equalItems(x.Items, y.Items)
	case *Map:
		y, ok := b.(*Map)
		if !ok || len(x.Pairs) != len(y.Pairs) {
			return false
		}
		for i := range x.Pairs {
			if !KeyEqual(x.Pairs[i].Key, y.Pairs[i].Key) || !Equal(x.Pairs[i].Val, y.Pairs[i].Val) {
				return false
			}
		}
		return true
	case *Lambda:
		return false
	default:
		return false
	}
}

func equalItems(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// KeyEqual compares keys through their value form.
func KeyEqual(a, b ExprKey) bool {
	return Equal(a.Expr(), b.Expr())
}

// HashCode folds e.Hash() into 64 bits.
func HashCode(e Expr) (uint64, error) {
	hash, err := e.Hash()
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	h.Write([]byte(hash))
	return h.Sum64(), nil
}
