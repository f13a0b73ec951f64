// Package frame implements an immutable, insertion-ordered key/value mapping.
//
// Frames back both environment scopes and map literals. Every operation
// returns a new Frame; the receiver is never modified, so frames may be
// shared between goroutines freely.
package frame

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrKeyValueCountMismatch = errors.New("Key and value counts do not match")

type Entry[K, V any] struct {
	Key   K
	Value V
}

type Frame[K, V any] struct {
	entries []Entry[K, V]
	eq      func(a, b K) bool
}

// New returns an empty frame comparing keys with ==.
func New[K comparable, V any]() Frame[K, V] {
	return Frame[K, V]{eq: func(a, b K) bool { return a == b }}
}

// NewFunc returns an empty frame comparing keys with eq.
func NewFunc[K, V any](eq func(a, b K) bool) Frame[K, V] {
	return Frame[K, V]{eq: eq}
}

func (f Frame[K, V]) equal(a, b K) bool {
	if f.eq == nil {
		// zero Frame: keys may be incomparable, compare deeply
		return reflect.DeepEqual(a, b)
	}
	return f.eq(a, b)
}

func (f Frame[K, V]) index(key K) int {
	return f.indexIn(f.entries, key)
}

func (f Frame[K, V]) indexIn(entries []Entry[K, V], key K) int {
	for i := range entries {
		if f.equal(entries[i].Key, key) {
			return i
		}
	}
	return -1
}

// put binds key in entries, which must be owned by the caller.
func (f Frame[K, V]) put(entries []Entry[K, V], key K, value V) []Entry[K, V] {
	if i := f.indexIn(entries, key); i >= 0 {
		entries[i].Value = value
		return entries
	}
	return append(entries, Entry[K, V]{key, value})
}

func (f Frame[K, V]) with(entries []Entry[K, V]) Frame[K, V] {
	return Frame[K, V]{entries: entries, eq: f.eq}
}

func (f Frame[K, V]) clone(extra int) []Entry[K, V] {
	res := make([]Entry[K, V], len(f.entries), len(f.entries)+extra)
	copy(res, f.entries)
	return res
}

func (f Frame[K, V]) Len() int {
	return len(f.entries)
}

// Entries returns a copy of the frame's entries in insertion order.
func (f Frame[K, V]) Entries() []Entry[K, V] {
	return f.clone(0)
}

func (f Frame[K, V]) Keys() []K {
	res := make([]K, len(f.entries))
	for i, e := range f.entries {
		res[i] = e.Key
	}
	return res
}

func (f Frame[K, V]) Values() []V {
	res := make([]V, len(f.entries))
	for i, e := range f.entries {
		res[i] = e.Value
	}
	return res
}

// Each calls fn for every entry in order until fn returns false.
func (f Frame[K, V]) Each(fn func(K, V) bool) {
	for _, e := range f.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// Assoc binds key to value. An existing key keeps its position.
func (f Frame[K, V]) Assoc(key K, value V) Frame[K, V] {
	if i := f.index(key); i >= 0 {
		entries := f.clone(0)
		entries[i].Value = value
		return f.with(entries)
	}
	entries := f.clone(1)
	entries = append(entries, Entry[K, V]{key, value})
	return f.with(entries)
}

func (f Frame[K, V]) Dissoc(key K) Frame[K, V] {
	i := f.index(key)
	if i < 0 {
		return f
	}
	entries := make([]Entry[K, V], 0, len(f.entries)-1)
	entries = append(entries, f.entries[:i]...)
	entries = append(entries, f.entries[i+1:]...)
	return f.with(entries)
}

// Merge returns the union of f and other. Keys present in both take
// other's value.
func (f Frame[K, V]) Merge(other Frame[K, V]) Frame[K, V] {
	entries := f.clone(len(other.entries))
	for _, e := range other.entries {
		entries = f.put(entries, e.Key, e.Value)
	}
	return f.with(entries)
}

func (f Frame[K, V]) Lookup(key K) (V, bool) {
	if i := f.index(key); i >= 0 {
		return f.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// Get returns the value bound to key, or def.
func (f Frame[K, V]) Get(key K, def V) V {
	if v, ok := f.Lookup(key); ok {
		return v
	}
	return def
}

// Update replaces the value bound to key with fn(value).
// Absent keys leave the frame unchanged.
func (f Frame[K, V]) Update(key K, fn func(V) V) Frame[K, V] {
	i := f.index(key)
	if i < 0 {
		return f
	}
	entries := f.clone(0)
	entries[i].Value = fn(entries[i].Value)
	return f.with(entries)
}

// SelectKeys projects f onto keys. Keys missing from f are dropped.
// The result keeps f's order.
func (f Frame[K, V]) SelectKeys(keys []K) Frame[K, V] {
	entries := []Entry[K, V]{}
	for _, e := range f.entries {
		for _, k := range keys {
			if f.equal(e.Key, k) {
				entries = append(entries, e)
				break
			}
		}
	}
	return f.with(entries)
}

func (f Frame[K, V]) ContainsKey(key K) bool {
	return f.index(key) >= 0
}

// MapKeys rewrites every key with fn. Colliding keys collapse, the last
// written value wins.
func MapKeys[K, V any, K2 comparable](f Frame[K, V], fn func(K) K2) Frame[K2, V] {
	return MapKeysFunc(f, fn, func(a, b K2) bool { return a == b })
}

// MapKeysFunc is MapKeys for key types compared with eq.
func MapKeysFunc[K, V, K2 any](f Frame[K, V], fn func(K) K2, eq func(a, b K2) bool) Frame[K2, V] {
	res := NewFunc[K2, V](eq)
	entries := make([]Entry[K2, V], 0, len(f.entries))
	for _, e := range f.entries {
		entries = res.put(entries, fn(e.Key), e.Value)
	}
	return res.with(entries)
}

func MapValues[K, V, V2 any](f Frame[K, V], fn func(V) V2) Frame[K, V2] {
	entries := make([]Entry[K, V2], len(f.entries))
	for i, e := range f.entries {
		entries[i] = Entry[K, V2]{e.Key, fn(e.Value)}
	}
	return Frame[K, V2]{entries: entries, eq: f.eq}
}

// BuildFrom zips keys and values into a frame.
// Sequences of different length are rejected with ErrKeyValueCountMismatch.
func BuildFrom[K comparable, V any](keys []K, values []V) (Frame[K, V], error) {
	return BuildFromFunc(func(a, b K) bool { return a == b }, keys, values)
}

// BuildFromFunc is BuildFrom for key types compared with eq.
func BuildFromFunc[K, V any](eq func(a, b K) bool, keys []K, values []V) (Frame[K, V], error) {
	if len(keys) != len(values) {
		return Frame[K, V]{}, fmt.Errorf("%w: %d keys, %d values", ErrKeyValueCountMismatch, len(keys), len(values))
	}
	res := NewFunc[K, V](eq)
	entries := make([]Entry[K, V], 0, len(keys))
	for i := range keys {
		entries = res.put(entries, keys[i], values[i])
	}
	return res.with(entries), nil
}
