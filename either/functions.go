package either

import (
	"github.com/auth-platform/libs/go/container/contract"
)

// Curried free functions mirroring every transformation, container
// last. The type-changing operations live only here because Go methods
// cannot introduce type parameters.

// Map applies fn to the right value.
func Map[L, R, U any](fn func(R) U) func(Either[L, R]) Either[L, U] {
	return func(e Either[L, R]) Either[L, U] {
		if !e.isRight {
			return Left[L, U](e.left)
		}
		return Right[L](fn(e.right))
	}
}

// Second applies fn to the right value. It is Map under the bifunctor
// name.
func Second[L, R, U any](fn func(R) U) func(Either[L, R]) Either[L, U] {
	return Map[L, R, U](fn)
}

// First applies fn to the left value.
func First[L, M, R any](fn func(L) M) func(Either[L, R]) Either[M, R] {
	return func(e Either[L, R]) Either[M, R] {
		if e.isRight {
			return Right[M](e.right)
		}
		return Left[M, R](fn(e.left))
	}
}

// MapBoth maps each side independently; exactly one of the two
// functions executes.
func MapBoth[L, M, R, U any](onLeft func(L) M, onRight func(R) U) func(Either[L, R]) Either[M, U] {
	return func(e Either[L, R]) Either[M, U] {
		if e.isRight {
			return Right[M](onRight(e.right))
		}
		return Left[M, U](onLeft(e.left))
	}
}

// Chain applies a function that itself returns an Either. Left
// short-circuits without invoking fn.
func Chain[L, R, U any](fn func(R) Either[L, U]) func(Either[L, R]) Either[L, U] {
	return func(e Either[L, R]) Either[L, U] {
		if !e.isRight {
			return Left[L, U](e.left)
		}
		return fn(e.right)
	}
}

// Ap applies a wrapped function to a wrapped value. The value
// container's Left wins when both sides are Left.
func Ap[L, R, U any](ef Either[L, func(R) U]) func(Either[L, R]) Either[L, U] {
	return func(e Either[L, R]) Either[L, U] {
		if !e.isRight {
			return Left[L, U](e.left)
		}
		if !ef.isRight {
			return Left[L, U](ef.left)
		}
		return Right[L](ef.right(e.right))
	}
}

// Filter turns Right into Left(leftValue) unless the predicate holds.
func Filter[L, R any](predicate func(R) bool, leftValue L) func(Either[L, R]) Either[L, R] {
	return func(e Either[L, R]) Either[L, R] {
		return e.Filter(predicate, leftValue)
	}
}

// Alt substitutes the supplied alternative for Left.
func Alt[L, R any](supplier func() Either[L, R]) func(Either[L, R]) Either[L, R] {
	return func(e Either[L, R]) Either[L, R] {
		return e.OrElse(supplier)
	}
}

// Tap invokes fn with the right value and passes the container through
// unchanged.
func Tap[L, R any](fn func(R)) func(Either[L, R]) Either[L, R] {
	return func(e Either[L, R]) Either[L, R] {
		return e.IfRight(fn)
	}
}

// Fold reduces the Either to a single value, running exactly one of
// the two branches.
func Fold[L, R, U any](onLeft func(L) U, onRight func(R) U) func(Either[L, R]) U {
	return func(e Either[L, R]) U {
		if e.isRight {
			return onRight(e.right)
		}
		return onLeft(e.left)
	}
}

// CheckedMap runs fn on the right value inside a fault boundary. A
// returned error or recovered panic is folded to Left through onFault;
// contract violations are re-raised. Left passes through unchanged.
func CheckedMap[L, R any](onFault func(error) L, fn func(R) (R, error)) func(Either[L, R]) Either[L, R] {
	return func(e Either[L, R]) Either[L, R] {
		if !e.isRight {
			return e
		}
		value, fault := runChecked(fn, e.right)
		if fault != nil {
			return Left[L, R](onFault(fault))
		}
		return Right[L](value)
	}
}

// CheckedBimap runs fn on the right value inside a fault boundary.
// Success re-wraps in Right; a fault calls leftFold(zero, fault) and
// wraps the result in Left. On an existing Left, fn is never invoked
// and leftFold(currentLeft, nil) runs instead.
func CheckedBimap[L, R any](leftFold func(L, error) L, fn func(R) (R, error)) func(Either[L, R]) Either[L, R] {
	return func(e Either[L, R]) Either[L, R] {
		if !e.isRight {
			return Left[L, R](leftFold(e.left, nil))
		}
		value, fault := runChecked(fn, e.right)
		if fault != nil {
			var zero L
			return Left[L, R](leftFold(zero, fault))
		}
		return Right[L](value)
	}
}

func runChecked[R any](fn func(R) (R, error), value R) (out R, fault error) {
	defer func() {
		if r := recover(); r != nil {
			if v, ok := contract.From(r); ok {
				panic(v)
			}
			fault = faultOf(r)
		}
	}()
	return fn(value)
}
