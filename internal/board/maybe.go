package board

import "fmt"

// Maybe is an optional cell value. The zero value is empty.
type Maybe[V comparable] struct {
	value V
	ok    bool
}

// Some wraps a present value.
func Some[V comparable](v V) Maybe[V] {
	return Maybe[V]{value: v, ok: true}
}

// None returns the empty value.
func None[V comparable]() Maybe[V] {
	return Maybe[V]{}
}

// Get returns the value and whether it is present.
func (m Maybe[V]) Get() (V, bool) {
	return m.value, m.ok
}

// IsSome returns true if a value is present.
func (m Maybe[V]) IsSome() bool {
	return m.ok
}

// IsNone returns true if the cell is empty.
func (m Maybe[V]) IsNone() bool {
	return !m.ok
}

// OrElse returns the value, or def when empty.
func (m Maybe[V]) OrElse(def V) V {
	if !m.ok {
		return def
	}
	return m.value
}

// Is returns true if a value is present and equal to v.
func (m Maybe[V]) Is(v V) bool {
	return m.ok && m.value == v
}

// String renders empty values as ".".
func (m Maybe[V]) String() string {
	if !m.ok {
		return "."
	}
	return fmt.Sprint(m.value)
}
