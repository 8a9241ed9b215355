// Package conv wires the three container types together. Each
// conversion is total and variant-preserving, built on the source
// type's capability-record fold so the core packages stay decoupled
// from one another. Positive payloads carry over unchanged; negative
// payloads collapse to the target's canonical empty marker where the
// target cannot represent them.
package conv

import (
	"github.com/auth-platform/libs/go/container/either"
	"github.com/auth-platform/libs/go/container/maybe"
	"github.com/auth-platform/libs/go/container/validation"
)

// MaybeToEither maps Just(v) to Right(v) and Nothing to Left of L's
// zero value.
func MaybeToEither[L, T any](m maybe.Maybe[T]) either.Either[L, T] {
	return maybe.ToEither(m,
		either.Right[L, T],
		func() either.Either[L, T] { var zero L; return either.Left[L, T](zero) },
	)
}

// EitherToMaybe maps Right(v) to Just(v) and Left to Nothing, the left
// payload discarded. A nil right payload also collapses to Nothing
// since an optional cannot hold an absent marker.
func EitherToMaybe[L, T any](e either.Either[L, T]) maybe.Maybe[T] {
	return either.ToMaybe(e, maybe.OfNullable[T], maybe.Nothing[T])
}

// MaybeToValidation maps Just(v) to Success(v) and Nothing to a
// singleton Failure of E's zero value.
func MaybeToValidation[E, T any](m maybe.Maybe[T]) validation.Validation[E, T] {
	return maybe.ToValidation(m,
		validation.Success[E, T],
		func() validation.Validation[E, T] { var zero E; return validation.Failure[E, T](zero) },
	)
}

// ValidationToMaybe maps Success(v) to Just(v) and Failure to Nothing,
// the error sequence discarded.
func ValidationToMaybe[E, T any](v validation.Validation[E, T]) maybe.Maybe[T] {
	return validation.ToMaybe(v, maybe.OfNullable[T], maybe.Nothing[T])
}

// EitherToValidation maps Right(v) to Success(v) and Left(e) to
// Failure([e]), the single error auto-wrapped as a singleton sequence.
func EitherToValidation[L, T any](e either.Either[L, T]) validation.Validation[L, T] {
	return either.ToValidation(e, validation.Success[L, T], validation.Failure[L, T])
}

// ValidationToEither maps Success(v) to Right(v) and Failure(es) to
// Left(es): the whole sequence becomes the single left payload. The
// arity is collapsed, the data is not.
func ValidationToEither[E, T any](v validation.Validation[E, T]) either.Either[[]E, T] {
	return validation.ToEither(v, either.Right[[]E, T], either.Left[[]E, T])
}
