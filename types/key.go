package types

import (
	"fmt"
	"strconv"
)

// ExprKey is a value usable as a map or environment key. It mirrors Expr
// without the lambda variant.
type ExprKey interface {
	fmt.Stringer
	// Expr embeds the key back into the value space.
	Expr() Expr
	key()
}

var (
	_ ExprKey = KeySymbol("")
	_ ExprKey = KeyKeyword("")
	_ ExprKey = KeyNumber(0)
	_ ExprKey = KeyBool(false)
	_ ExprKey = KeyStr("")
	_ ExprKey = (*KeyList)(nil)
	_ ExprKey = (*KeyVector)(nil)
	_ ExprKey = (*KeyMap)(nil)
	_ ExprKey = KeyNil{}
)

// MakeKey projects e onto the key space. Only symbols, keywords, numbers
// and strings are accepted; anything else reports false.
func MakeKey(e Expr) (ExprKey, bool) {
	if !e.Type().Keyable() {
		return nil, false
	}
	switch v := e.(type) {
	case Symbol:
		return KeySymbol(v), true
	case Keyword:
		return KeyKeyword(v), true
	case Number:
		return KeyNumber(v), true
	case Str:
		return KeyStr(v), true
	default:
		return nil, false
	}
}

// ToExpr is total: every key, compound ones included, has a value form.
func ToExpr(k ExprKey) Expr {
	return k.Expr()
}

type KeySymbol string

func (k KeySymbol) String() string { return string(k) }
func (k KeySymbol) Expr() Expr     { return Symbol(k) }
func (KeySymbol) key()             {}

type KeyKeyword string

func (k KeyKeyword) String() string { return ":" + string(k) }
func (k KeyKeyword) Expr() Expr     { return Keyword(k) }
func (KeyKeyword) key()             {}

type KeyNumber int64

func (k KeyNumber) String() string { return strconv.FormatInt(int64(k), 10) }
func (k KeyNumber) Expr() Expr     { return Number(k) }
func (KeyNumber) key()             {}

type KeyBool bool

func (k KeyBool) String() string { return strconv.FormatBool(bool(k)) }
func (k KeyBool) Expr() Expr     { return Bool(k) }
func (KeyBool) key()             {}

type KeyStr string

func (k KeyStr) String() string { return `"` + string(k) + `"` }
func (k KeyStr) Expr() Expr     { return Str(k) }
func (KeyStr) key()             {}

type KeyNil struct{}

func (KeyNil) String() string { return "nil" }
func (KeyNil) Expr() Expr     { return Nil{} }
func (KeyNil) key()           {}

type KeyList struct {
	Items []ExprKey
}

func (k *KeyList) String() string { return PrnStr(k.Expr()) }
func (k *KeyList) Expr() Expr     { return &List{Items: keysToExprs(k.Items)} }
func (*KeyList) key()             {}

type KeyVector struct {
	Items []ExprKey
}

func (k *KeyVector) String() string { return PrnStr(k.Expr()) }
func (k *KeyVector) Expr() Expr     { return &Vector{Items: keysToExprs(k.Items)} }
func (*KeyVector) key()             {}

type KeyPair struct {
	Key ExprKey
	Val ExprKey
}

type KeyMap struct {
	Pairs []KeyPair
}

func (k *KeyMap) String() string { return PrnStr(k.Expr()) }

func (k *KeyMap) Expr() Expr {
	pairs := make([]Pair, len(k.Pairs))
	for i, p := range k.Pairs {
		pairs[i] = Pair{Key: p.Key, Val: p.Val.Expr()}
	}
	return &Map{Pairs: pairs}
}

func (*KeyMap) key() {}

func keysToExprs(keys []ExprKey) []Expr {
	res := make([]Expr, len(keys))
	for i, k := range keys {
		res[i] = k.Expr()
	}
	return res
}
