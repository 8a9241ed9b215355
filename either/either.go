// Package either provides a single-error disjunction container with
// two closed variants, Right and Left. It is right-biased and never
// aggregates: transformations act on Right and the first Left flows
// through unchanged. Either side may carry any payload, including nil
// and other containers; nothing is flattened or re-wrapped.
package either

import (
	"fmt"

	"github.com/auth-platform/libs/go/container/contract"
	"github.com/auth-platform/libs/go/container/equality"
)

// Either represents a value of one of two possible types. The zero
// value is Left of L's zero value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Right creates an Either with a right (success) value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// Left creates an Either with a left (error) value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Try runs fn inside a fault boundary. A returned error or a recovered
// panic becomes Left; contract violations are re-raised, never
// swallowed.
func Try[R any](fn func() (R, error)) (e Either[error, R]) {
	defer func() {
		if r := recover(); r != nil {
			if v, ok := contract.From(r); ok {
				panic(v)
			}
			e = Left[error, R](faultOf(r))
		}
	}()
	value, err := fn()
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](value)
}

func faultOf(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// IsRight returns true if the Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if the Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// MapRight applies a same-type function to the right value. Use the
// free function Map to change the value type.
func (e Either[L, R]) MapRight(fn func(R) R) Either[L, R] {
	if !e.isRight {
		return e
	}
	return Right[L](fn(e.right))
}

// MapLeft applies a same-type function to the left value.
func (e Either[L, R]) MapLeft(fn func(L) L) Either[L, R] {
	if e.isRight {
		return e
	}
	return Left[L, R](fn(e.left))
}

// Filter turns Right into Left(leftValue) unless the predicate holds.
// Left passes through unchanged.
func (e Either[L, R]) Filter(predicate func(R) bool, leftValue L) Either[L, R] {
	return e.FilterLazy(predicate, func(R) L { return leftValue })
}

// FilterLazy is Filter with the replacement left value computed from
// the rejected right payload.
func (e Either[L, R]) FilterLazy(predicate func(R) bool, onFail func(R) L) Either[L, R] {
	if !e.isRight || predicate(e.right) {
		return e
	}
	return Left[L, R](onFail(e.right))
}

// Or returns e if Right, otherwise other.
func (e Either[L, R]) Or(other Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}
	return other
}

// OrElse returns e if Right, otherwise the supplied alternative. The
// supplier runs only on Left.
func (e Either[L, R]) OrElse(supplier func() Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}
	return supplier()
}

// Recover converts Left into Right of the given value.
func (e Either[L, R]) Recover(value R) Either[L, R] {
	if e.isRight {
		return e
	}
	return Right[L](value)
}

// RecoverWith converts Left into Right of a value computed from the
// left payload.
func (e Either[L, R]) RecoverWith(fn func(L) R) Either[L, R] {
	if e.isRight {
		return e
	}
	return Right[L](fn(e.left))
}

// GetOrElse returns the right value or a default.
func (e Either[L, R]) GetOrElse(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// GetOrElseGet returns the right value or computes a default from the
// left payload.
func (e Either[L, R]) GetOrElseGet(fn func(L) R) R {
	if e.isRight {
		return e.right
	}
	return fn(e.left)
}

// GetOrElseThrow returns the right value or panics with an error built
// from the left payload.
func (e Either[L, R]) GetOrElseThrow(fn func(L) error) R {
	if !e.isRight {
		panic(fn(e.left))
	}
	return e.right
}

// Unwrap returns the right value or panics with a contract.Violation
// on Left.
func (e Either[L, R]) Unwrap() R {
	if !e.isRight {
		contract.Panic(contract.CodeWrongVariant, "either.Unwrap", "called Unwrap on Left")
	}
	return e.right
}

// UnwrapLeft returns the left value or panics with a
// contract.Violation on Right.
func (e Either[L, R]) UnwrapLeft() L {
	if e.isRight {
		contract.Panic(contract.CodeWrongVariant, "either.UnwrapLeft", "called UnwrapLeft on Right")
	}
	return e.left
}

// Swap exchanges the two sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// ToSlice converts the Either to a slice of zero or one right value.
func (e Either[L, R]) ToSlice() []R {
	if e.isRight {
		return []R{e.right}
	}
	return []R{}
}

// Equals reports structural equality: same variant and deeply-equal
// payload on the active side.
func (e Either[L, R]) Equals(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return equality.Deep(e.right, other.right)
	}
	return equality.Deep(e.left, other.left)
}

// IfRight invokes fn with the right value and returns the receiver
// unchanged.
func (e Either[L, R]) IfRight(fn func(R)) Either[L, R] {
	if e.isRight {
		fn(e.right)
	}
	return e
}

// IfLeft invokes fn with the left value and returns the receiver
// unchanged.
func (e Either[L, R]) IfLeft(fn func(L)) Either[L, R] {
	if !e.isRight {
		fn(e.left)
	}
	return e
}

// Match executes exactly one of the two branches.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
