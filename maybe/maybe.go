// Package maybe provides an optional value container with two closed
// variants, Just and Nothing. It is right-biased: transformations act
// on Just and pass Nothing through unchanged.
package maybe

import (
	"fmt"

	"github.com/auth-platform/libs/go/container/contract"
	"github.com/auth-platform/libs/go/container/equality"
)

// Maybe represents an optional value that may or may not be present.
// The zero value is Nothing. Instances are immutable; every
// transformation returns a new container.
type Maybe[T any] struct {
	value   T
	present bool
}

// Just creates a Maybe containing a value. It panics with a
// contract.Violation if value is an absent marker; use OfNullable when
// the value may legitimately be nil.
func Just[T any](value T) Maybe[T] {
	if equality.Nilish(value) {
		contract.Panic(contract.CodeNilValue, "maybe.Just", "value must not be an absent marker")
	}
	return Maybe[T]{value: value, present: true}
}

// OfNullable creates a Maybe from a possibly-nil value. Absent markers
// become Nothing; everything else becomes Just.
func OfNullable[T any](value T) Maybe[T] {
	if equality.Nilish(value) {
		return Nothing[T]()
	}
	return Maybe[T]{value: value, present: true}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr creates a Maybe from a pointer, nil mapping to Nothing.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Nothing[T]()
	}
	return OfNullable(*ptr)
}

// Try runs fn inside a fault boundary. A returned error or a recovered
// panic yields Nothing; contract violations are re-raised, never
// swallowed. The produced value is re-wrapped through OfNullable.
func Try[T any](fn func() (T, error)) (m Maybe[T]) {
	defer func() {
		if r := recover(); r != nil {
			if v, ok := contract.From(r); ok {
				panic(v)
			}
			m = Nothing[T]()
		}
	}()
	value, err := fn()
	if err != nil {
		return Nothing[T]()
	}
	return OfNullable(value)
}

// IsPresent returns true if the Maybe contains a value.
func (m Maybe[T]) IsPresent() bool {
	return m.present
}

// IsAbsent returns true if the Maybe is Nothing.
func (m Maybe[T]) IsAbsent() bool {
	return !m.present
}

// Map applies a same-type function to the contained value. The result
// is re-wrapped through OfNullable, so a mapper producing an absent
// marker collapses to Nothing. Use the free function Map to change the
// value type.
func (m Maybe[T]) Map(fn func(T) T) Maybe[T] {
	if !m.present {
		return m
	}
	return OfNullable(fn(m.value))
}

// Filter returns Nothing unless the value is present and the predicate
// holds.
func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if m.present && predicate(m.value) {
		return m
	}
	return Nothing[T]()
}

// Or returns m if present, otherwise other.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return other
}

// OrElse returns m if present, otherwise the supplied alternative.
// The supplier runs only on Nothing.
func (m Maybe[T]) OrElse(supplier func() Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return supplier()
}

// Recover converts Nothing into a Maybe of the given value, re-wrapped
// through OfNullable. Just is returned unchanged.
func (m Maybe[T]) Recover(value T) Maybe[T] {
	if m.present {
		return m
	}
	return OfNullable(value)
}

// RecoverWith converts Nothing into a Maybe of the supplied value.
// The supplier runs only on Nothing; its result passes through
// OfNullable.
func (m Maybe[T]) RecoverWith(supplier func() T) Maybe[T] {
	if m.present {
		return m
	}
	return OfNullable(supplier())
}

// GetOrElse returns the contained value or a default.
func (m Maybe[T]) GetOrElse(defaultValue T) T {
	if m.present {
		return m.value
	}
	return defaultValue
}

// GetOrElseGet returns the contained value or computes a default.
func (m Maybe[T]) GetOrElseGet(fn func() T) T {
	if m.present {
		return m.value
	}
	return fn()
}

// GetOrElseThrow returns the contained value or panics with the
// supplied error.
func (m Maybe[T]) GetOrElseThrow(fn func() error) T {
	if !m.present {
		panic(fn())
	}
	return m.value
}

// Unwrap returns the contained value or panics with a
// contract.Violation on Nothing.
func (m Maybe[T]) Unwrap() T {
	if !m.present {
		contract.Panic(contract.CodeWrongVariant, "maybe.Unwrap", "called Unwrap on Nothing")
	}
	return m.value
}

// ToSlice converts the Maybe to a slice of zero or one element.
func (m Maybe[T]) ToSlice() []T {
	if m.present {
		return []T{m.value}
	}
	return []T{}
}

// ToPtr converts the Maybe to a pointer, Nothing mapping to nil.
func (m Maybe[T]) ToPtr() *T {
	if m.present {
		return &m.value
	}
	return nil
}

// Equals reports structural equality: same variant and deeply-equal
// payload.
func (m Maybe[T]) Equals(other Maybe[T]) bool {
	if m.present != other.present {
		return false
	}
	if !m.present {
		return true
	}
	return equality.Deep(m.value, other.value)
}

// IfPresent invokes fn with the contained value and returns the
// receiver unchanged. It is the positive observation hook.
func (m Maybe[T]) IfPresent(fn func(T)) Maybe[T] {
	if m.present {
		fn(m.value)
	}
	return m
}

// IfAbsent invokes fn when the Maybe is Nothing and returns the
// receiver unchanged.
func (m Maybe[T]) IfAbsent(fn func()) Maybe[T] {
	if !m.present {
		fn()
	}
	return m
}

// Match executes exactly one of the two branches.
func (m Maybe[T]) Match(onPresent func(T), onAbsent func()) {
	if m.present {
		onPresent(m.value)
	} else {
		onAbsent()
	}
}

// String implements fmt.Stringer.
func (m Maybe[T]) String() string {
	if m.present {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}
