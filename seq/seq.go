// Package seq holds the car/cdr/last primitives used to walk list-shaped forms.
package seq

// First returns the head of xs, or false if xs is empty.
func First[T any](xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return xs[0], true
}

// Rest returns a new slice with everything but the head.
// It is empty (not nil) for empty or single-element input.
func Rest[T any](xs []T) []T {
	if len(xs) <= 1 {
		return []T{}
	}
	res := make([]T, len(xs)-1)
	copy(res, xs[1:])
	return res
}

// Last returns the final element of xs, or false if xs is empty.
func Last[T any](xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return xs[len(xs)-1], true
}
