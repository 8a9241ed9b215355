// Package containertest provides rapid generators for the three
// container types, for property tests over mixed variants. Value
// generators supplied by callers must not produce absent markers when
// feeding JustGen or MaybeGen.
package containertest

import (
	"pgregory.net/rapid"

	"github.com/auth-platform/libs/go/container/either"
	"github.com/auth-platform/libs/go/container/maybe"
	"github.com/auth-platform/libs/go/container/validation"
)

// MaybeGen generates Maybe[T] values of both variants.
func MaybeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[maybe.Maybe[T]] {
	return rapid.Custom(func(t *rapid.T) maybe.Maybe[T] {
		if rapid.Bool().Draw(t, "isPresent") {
			return maybe.Just(valueGen.Draw(t, "value"))
		}
		return maybe.Nothing[T]()
	})
}

// JustGen generates Just values only.
func JustGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[maybe.Maybe[T]] {
	return rapid.Custom(func(t *rapid.T) maybe.Maybe[T] {
		return maybe.Just(valueGen.Draw(t, "value"))
	})
}

// NothingGen generates Nothing values only.
func NothingGen[T any]() *rapid.Generator[maybe.Maybe[T]] {
	return rapid.Just(maybe.Nothing[T]())
}

// EitherGen generates Either[L, R] values of both variants.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return either.Right[L](rightGen.Draw(t, "right"))
		}
		return either.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// RightGen generates Right values only.
func RightGen[L, R any](rightGen *rapid.Generator[R]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		return either.Right[L](rightGen.Draw(t, "right"))
	})
}

// LeftGen generates Left values only.
func LeftGen[L, R any](leftGen *rapid.Generator[L]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		return either.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// ValidationGen generates Validation[E, T] values of both variants;
// failures carry between one and three errors.
func ValidationGen[E, T any](errGen *rapid.Generator[E], valueGen *rapid.Generator[T]) *rapid.Generator[validation.Validation[E, T]] {
	return rapid.Custom(func(t *rapid.T) validation.Validation[E, T] {
		if rapid.Bool().Draw(t, "isSuccess") {
			return validation.Success[E](valueGen.Draw(t, "value"))
		}
		errs := rapid.SliceOfN(errGen, 1, 3).Draw(t, "errors")
		return validation.FailureOf[E, T](errs)
	})
}

// SuccessGen generates Success values only.
func SuccessGen[E, T any](valueGen *rapid.Generator[T]) *rapid.Generator[validation.Validation[E, T]] {
	return rapid.Custom(func(t *rapid.T) validation.Validation[E, T] {
		return validation.Success[E](valueGen.Draw(t, "value"))
	})
}

// FailureGen generates Failure values only, carrying between one and
// three errors.
func FailureGen[E, T any](errGen *rapid.Generator[E]) *rapid.Generator[validation.Validation[E, T]] {
	return rapid.Custom(func(t *rapid.T) validation.Validation[E, T] {
		errs := rapid.SliceOfN(errGen, 1, 3).Draw(t, "errors")
		return validation.FailureOf[E, T](errs)
	})
}
