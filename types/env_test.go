package types

import (
	"errors"
	"testing"

	"github.com/biutthapa/doodle/frame"
)

func TestEnvChain(t *testing.T) {
	global, err := NewEnv(nil, []Symbol{"x", "y"}, []Expr{Number(1), Number(2)})
	if err != nil {
		t.Fatalf("NewEnv() failed: %v", err)
	}
	local, err := NewLetEnv(global, []Expr{Symbol("x"), Str("shadow")})
	if err != nil {
		t.Fatalf("NewLetEnv() failed: %v", err)
	}

	tests := []struct {
		env  *Env
		name string
		exp  Expr
	}{
		{global, "x", Number(1)},
		{global, "y", Number(2)},
		{local, "x", Str("shadow")},
		{local, "y", Number(2)},
	}
	for _, test := range tests {
		act, err := test.env.Get(test.name)
		if err != nil {
			t.Errorf("Get(%v) failed: %v", test.name, err)
			continue
		}
		if !Equal(act, test.exp) {
			t.Errorf("Get(%v) failed: expected %v, actual %v", test.name, test.exp, act)
		}
	}

	if local.Outer() != global {
		t.Errorf("Outer() failed")
	}
}

func TestEnvNotFound(t *testing.T) {
	env := (&Env{}).Set("a", Nil{})
	if _, err := env.Get("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, actual %v", err)
	}
	if _, ok := env.Find("a"); !ok {
		t.Errorf("Find(a) failed")
	}
}

func TestEnvSetIsImmutable(t *testing.T) {
	env := (&Env{}).Set("a", Number(1))
	next := env.Set("a", Number(2))
	if v, _ := env.Get("a"); !Equal(v, Number(1)) {
		t.Errorf("Set() mutated receiver: expected 1, actual %v", v)
	}
	if v, _ := next.Get("a"); !Equal(v, Number(2)) {
		t.Errorf("Set() failed: expected 2, actual %v", v)
	}
}

func TestNewEnvMismatch(t *testing.T) {
	_, err := NewEnv(nil, []Symbol{"a"}, []Expr{Number(1), Number(2)})
	if !errors.Is(err, frame.ErrKeyValueCountMismatch) {
		t.Errorf("expected ErrKeyValueCountMismatch, actual %v", err)
	}
}

func TestNewLetEnvOdd(t *testing.T) {
	_, err := NewLetEnv(nil, []Expr{Symbol("a")})
	if !errors.Is(err, ErrBindingArity) {
		t.Errorf("expected ErrBindingArity, actual %v", err)
	}
}
