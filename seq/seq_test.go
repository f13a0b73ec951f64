package seq

import (
	"reflect"
	"testing"
)

func TestFirst(t *testing.T) {
	tests := []struct {
		name string
		arg  []int
		exp  int
		ok   bool
	}{
		{"empty", []int{}, 0, false},
		{"nil", nil, 0, false},
		{"single", []int{7}, 7, true},
		{"many", []int{1, 2, 3}, 1, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			act, ok := First(test.arg)
			if act != test.exp || ok != test.ok {
				t.Errorf("First(%v) failed: expected (%v, %v), actual (%v, %v)", test.arg, test.exp, test.ok, act, ok)
			}
		})
	}
}

func TestRest(t *testing.T) {
	tests := []struct {
		name string
		arg  []string
		exp  []string
	}{
		{"empty", []string{}, []string{}},
		{"nil", nil, []string{}},
		{"single", []string{"x"}, []string{}},
		{"many", []string{"x", "y", "z"}, []string{"y", "z"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			act := Rest(test.arg)
			if !reflect.DeepEqual(act, test.exp) {
				t.Errorf("Rest(%v) failed: expected %v, actual %v", test.arg, test.exp, act)
			}
		})
	}
}

func TestRestDoesNotAlias(t *testing.T) {
	xs := []int{1, 2, 3}
	rest := Rest(xs)
	rest[0] = 42
	if xs[1] != 2 {
		t.Errorf("Rest() result aliases its input: %v", xs)
	}
}

func TestLast(t *testing.T) {
	tests := []struct {
		name string
		arg  []string
		exp  string
		ok   bool
	}{
		{"empty", []string{}, "", false},
		{"single", []string{"x"}, "x", true},
		{"many", []string{"x", "y", "z"}, "z", true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			act, ok := Last(test.arg)
			if act != test.exp || ok != test.ok {
				t.Errorf("Last(%v) failed: expected (%q, %v), actual (%q, %v)", test.arg, test.exp, test.ok, act, ok)
			}
		})
	}
}
