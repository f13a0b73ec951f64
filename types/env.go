package types

import (
	"errors"
	"fmt"

	"github.com/biutthapa/doodle/frame"
)

var ErrNotFound = errors.New("not found")

// Env is one immutable scope in an environment chain.
type Env struct {
	vars  frame.Frame[string, Expr]
	outer *Env
}

// NewEnv binds each of binds to the matching expression.
func NewEnv(outer *Env, binds []Symbol, exprs []Expr) (*Env, error) {
	names := make([]string, len(binds))
	for i, b := range binds {
		names[i] = string(b)
	}
	vars, err := frame.BuildFrom(names, exprs)
	if err != nil {
		return nil, fmt.Errorf("Cannot bind %v: %w", binds, err)
	}
	return &Env{vars: vars, outer: outer}, nil
}

// NewLetEnv creates a scope from a flat binding list, see ToDictionary.
func NewLetEnv(outer *Env, bindings []Expr) (*Env, error) {
	vars, err := ToDictionary(bindings)
	if err != nil {
		return nil, err
	}
	return &Env{vars: vars, outer: outer}, nil
}

func (e *Env) Outer() *Env {
	return e.outer
}

func (e *Env) Vars() frame.Frame[string, Expr] {
	return e.vars
}

// Set returns a copy of the scope with name bound to value.
func (e *Env) Set(name string, value Expr) *Env {
	return &Env{vars: e.vars.Assoc(name, value), outer: e.outer}
}

func (e *Env) Find(name string) (Expr, bool) {
	for env := e; env != nil; env = env.outer {
		if value, ok := env.vars.Lookup(name); ok {
			return value, true
		}
	}
	return nil, false
}

func (e *Env) Get(name string) (Expr, error) {
	value, ok := e.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}
	return value, nil
}
