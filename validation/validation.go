// Package validation provides an error-aggregating disjunction
// container with two closed variants, Success and Failure. A Failure
// always carries a non-empty ordered error sequence; Concat combines
// independent validations into one Failure holding every error in
// evaluation order, which is the capability Either lacks.
package validation

import (
	"fmt"

	"github.com/auth-platform/libs/go/container/contract"
	"github.com/auth-platform/libs/go/container/equality"
)

// Validation represents a value or one-or-more accumulated errors.
// Instances are immutable; every transformation returns a new
// container.
type Validation[E, T any] struct {
	value  T
	errors []E
	valid  bool
}

// Success creates a valid result.
func Success[E, T any](value T) Validation[E, T] {
	return Validation[E, T]{value: value, valid: true}
}

// Failure creates an invalid result from a single error, wrapped as a
// singleton sequence.
func Failure[E, T any](err E) Validation[E, T] {
	return Validation[E, T]{errors: []E{err}}
}

// FailureOf creates an invalid result from an already-assembled error
// sequence, stored as-is: the slice is not copied, so the caller must
// not mutate it afterwards. It panics with a contract.Violation when
// the sequence is empty: a Failure is never errorless.
func FailureOf[E, T any](errs []E) Validation[E, T] {
	if len(errs) == 0 {
		contract.Panic(contract.CodeEmptyFailure, "validation.FailureOf", "a Failure requires at least one error")
	}
	return Validation[E, T]{errors: errs}
}

// Try runs fn inside a fault boundary. A returned error or a recovered
// panic becomes a singleton Failure; contract violations are
// re-raised, never swallowed.
func Try[T any](fn func() (T, error)) (v Validation[error, T]) {
	defer func() {
		if r := recover(); r != nil {
			if cv, ok := contract.From(r); ok {
				panic(cv)
			}
			v = Failure[error, T](faultOf(r))
		}
	}()
	value, err := fn()
	if err != nil {
		return Failure[error, T](err)
	}
	return Success[error](value)
}

func faultOf(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// IsSuccess returns true if the validation passed.
func (v Validation[E, T]) IsSuccess() bool {
	return v.valid
}

// IsFailure returns true if the validation failed.
func (v Validation[E, T]) IsFailure() bool {
	return !v.valid
}

// Concat is the semigroup over the Failure error sequence:
//
//	Success.Concat(x)               == x
//	Failure(e1).Concat(Success)     == Failure(e1)
//	Failure(e1).Concat(Failure(e2)) == Failure(e1 ++ e2)
//
// The receiver's errors precede the argument's, so evaluation order is
// preserved when folding a list of validations left to right.
func (v Validation[E, T]) Concat(other Validation[E, T]) Validation[E, T] {
	if v.valid {
		return other
	}
	if other.valid {
		return v
	}
	merged := make([]E, 0, len(v.errors)+len(other.errors))
	merged = append(merged, v.errors...)
	merged = append(merged, other.errors...)
	return Validation[E, T]{errors: merged}
}

// MapSuccess applies a same-type function to the value. Use the free
// function Map to change the value type.
func (v Validation[E, T]) MapSuccess(fn func(T) T) Validation[E, T] {
	if !v.valid {
		return v
	}
	return Success[E](fn(v.value))
}

// MapFailure applies a same-type function to the whole error sequence.
// The result is re-checked against the non-empty invariant.
func (v Validation[E, T]) MapFailure(fn func([]E) []E) Validation[E, T] {
	if v.valid {
		return v
	}
	return FailureOf[E, T](fn(v.errors))
}

// Filter turns Success into a singleton Failure of err unless the
// predicate holds. Failure passes through unchanged.
func (v Validation[E, T]) Filter(predicate func(T) bool, err E) Validation[E, T] {
	if !v.valid || predicate(v.value) {
		return v
	}
	return Failure[E, T](err)
}

// Or returns v if Success, otherwise other.
func (v Validation[E, T]) Or(other Validation[E, T]) Validation[E, T] {
	if v.valid {
		return v
	}
	return other
}

// OrElse returns v if Success, otherwise the supplied alternative. The
// supplier runs only on Failure.
func (v Validation[E, T]) OrElse(supplier func() Validation[E, T]) Validation[E, T] {
	if v.valid {
		return v
	}
	return supplier()
}

// Recover converts Failure into Success of the given value.
func (v Validation[E, T]) Recover(value T) Validation[E, T] {
	if v.valid {
		return v
	}
	return Success[E](value)
}

// RecoverWith converts Failure into Success of a value computed from
// the error sequence.
func (v Validation[E, T]) RecoverWith(fn func([]E) T) Validation[E, T] {
	if v.valid {
		return v
	}
	return Success[E](fn(v.errors))
}

// GetOrElse returns the value or a default.
func (v Validation[E, T]) GetOrElse(defaultValue T) T {
	if v.valid {
		return v.value
	}
	return defaultValue
}

// GetOrElseGet returns the value or computes a default from the error
// sequence.
func (v Validation[E, T]) GetOrElseGet(fn func([]E) T) T {
	if v.valid {
		return v.value
	}
	return fn(v.errors)
}

// GetOrElseThrow returns the value or panics with an error built from
// the error sequence.
func (v Validation[E, T]) GetOrElseThrow(fn func([]E) error) T {
	if !v.valid {
		panic(fn(v.errors))
	}
	return v.value
}

// Unwrap returns the value or panics with a contract.Violation on
// Failure.
func (v Validation[E, T]) Unwrap() T {
	if !v.valid {
		contract.Panic(contract.CodeWrongVariant, "validation.Unwrap", "called Unwrap on Failure")
	}
	return v.value
}

// Errors returns a copy of the error sequence, nil on Success.
// Mutating the returned slice never affects the Validation.
func (v Validation[E, T]) Errors() []E {
	if len(v.errors) == 0 {
		return nil
	}
	out := make([]E, len(v.errors))
	copy(out, v.errors)
	return out
}

// ToSlice converts the Validation to a slice of zero or one value.
func (v Validation[E, T]) ToSlice() []T {
	if v.valid {
		return []T{v.value}
	}
	return []T{}
}

// Equals reports structural equality: same variant and deeply-equal
// payload on the active side.
func (v Validation[E, T]) Equals(other Validation[E, T]) bool {
	if v.valid != other.valid {
		return false
	}
	if v.valid {
		return equality.Deep(v.value, other.value)
	}
	return equality.Deep(v.errors, other.errors)
}

// IfSuccess invokes fn with the value and returns the receiver
// unchanged.
func (v Validation[E, T]) IfSuccess(fn func(T)) Validation[E, T] {
	if v.valid {
		fn(v.value)
	}
	return v
}

// IfFailure invokes fn with the error sequence and returns the
// receiver unchanged.
func (v Validation[E, T]) IfFailure(fn func([]E)) Validation[E, T] {
	if !v.valid {
		fn(v.errors)
	}
	return v
}

// Match executes exactly one of the two branches.
func (v Validation[E, T]) Match(onFailure func([]E), onSuccess func(T)) {
	if v.valid {
		onSuccess(v.value)
	} else {
		onFailure(v.errors)
	}
}

// String implements fmt.Stringer.
func (v Validation[E, T]) String() string {
	if v.valid {
		return fmt.Sprintf("Success(%v)", v.value)
	}
	return fmt.Sprintf("Failure(%v)", v.errors)
}
