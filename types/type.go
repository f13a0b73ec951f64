package types

type Type string

const (
	TypeSymbol  Type = "symbol"
	TypeKeyword Type = "keyword"
	TypeNumber  Type = "number"
	TypeBool    Type = "bool"
	TypeStr     Type = "str"
	TypeList    Type = "list"
	TypeVector  Type = "vector"
	TypeMap     Type = "map"
	TypeNil     Type = "nil"
	TypeLambda  Type = "lambda"
)

func (t Type) String() string {
	return ":" + string(t)
}

// Keyable reports whether MakeKey accepts values of type t.
func (t Type) Keyable() bool {
	switch t {
	case TypeSymbol, TypeKeyword, TypeNumber, TypeStr:
		return true
	default:
		return false
	}
}
