package validation

import (
	"github.com/auth-platform/libs/go/container/contract"
)

// Curried free functions mirroring every transformation, container
// last. Transformations that produce a new Failure preserve the
// singleton list-wrapping even when the caller passed a bare error.

// Map applies fn to the value.
func Map[E, T, U any](fn func(T) U) func(Validation[E, T]) Validation[E, U] {
	return func(v Validation[E, T]) Validation[E, U] {
		if !v.valid {
			return Validation[E, U]{errors: v.errors}
		}
		return Success[E](fn(v.value))
	}
}

// MapErrors applies fn to each error in the sequence, preserving
// order and arity.
func MapErrors[E, F, T any](fn func(E) F) func(Validation[E, T]) Validation[F, T] {
	return func(v Validation[E, T]) Validation[F, T] {
		if v.valid {
			return Success[F](v.value)
		}
		mapped := make([]F, len(v.errors))
		for i, e := range v.errors {
			mapped[i] = fn(e)
		}
		return Validation[F, T]{errors: mapped}
	}
}

// Bimap maps each side independently; exactly one of the two
// functions executes. The failure branch is re-checked against the
// non-empty invariant.
func Bimap[E, F, T, U any](onFailure func([]E) []F, onSuccess func(T) U) func(Validation[E, T]) Validation[F, U] {
	return func(v Validation[E, T]) Validation[F, U] {
		if v.valid {
			return Success[F](onSuccess(v.value))
		}
		return FailureOf[F, U](onFailure(v.errors))
	}
}

// Chain applies a function that itself returns a Validation. Failure
// short-circuits without invoking fn.
func Chain[E, T, U any](fn func(T) Validation[E, U]) func(Validation[E, T]) Validation[E, U] {
	return func(v Validation[E, T]) Validation[E, U] {
		if !v.valid {
			return Validation[E, U]{errors: v.errors}
		}
		return fn(v.value)
	}
}

// Ap applies a wrapped function to a wrapped value. Like Either's ap
// it short-circuits on the first Failure, the value container's
// winning when both sides fail; aggregation is Concat's job alone.
func Ap[E, T, U any](vf Validation[E, func(T) U]) func(Validation[E, T]) Validation[E, U] {
	return func(v Validation[E, T]) Validation[E, U] {
		if !v.valid {
			return Validation[E, U]{errors: v.errors}
		}
		if !vf.valid {
			return Validation[E, U]{errors: vf.errors}
		}
		return Success[E](vf.value(v.value))
	}
}

// Filter turns Success into a singleton Failure of err unless the
// predicate holds.
func Filter[E, T any](predicate func(T) bool, err E) func(Validation[E, T]) Validation[E, T] {
	return func(v Validation[E, T]) Validation[E, T] {
		return v.Filter(predicate, err)
	}
}

// Alt substitutes the supplied alternative for Failure.
func Alt[E, T any](supplier func() Validation[E, T]) func(Validation[E, T]) Validation[E, T] {
	return func(v Validation[E, T]) Validation[E, T] {
		return v.OrElse(supplier)
	}
}

// Tap invokes fn with the value and passes the container through
// unchanged.
func Tap[E, T any](fn func(T)) func(Validation[E, T]) Validation[E, T] {
	return func(v Validation[E, T]) Validation[E, T] {
		return v.IfSuccess(fn)
	}
}

// Fold reduces the Validation to a single value, running exactly one
// of the two branches.
func Fold[E, T, U any](onFailure func([]E) U, onSuccess func(T) U) func(Validation[E, T]) U {
	return func(v Validation[E, T]) U {
		if v.valid {
			return onSuccess(v.value)
		}
		return onFailure(v.errors)
	}
}

// CheckedBimap runs fn on the value inside a fault boundary. Success
// re-wraps in Success; a fault calls failFold(nil, fault) and wraps
// the result as a singleton Failure. On an existing Failure, fn is
// never invoked and failFold(currentErrors, nil) runs instead.
func CheckedBimap[E, T any](failFold func([]E, error) E, fn func(T) (T, error)) func(Validation[E, T]) Validation[E, T] {
	return func(v Validation[E, T]) Validation[E, T] {
		if !v.valid {
			return Failure[E, T](failFold(v.errors, nil))
		}
		value, fault := runChecked(fn, v.value)
		if fault != nil {
			return Failure[E, T](failFold(nil, fault))
		}
		return Success[E](value)
	}
}

func runChecked[T any](fn func(T) (T, error), value T) (out T, fault error) {
	defer func() {
		if r := recover(); r != nil {
			if cv, ok := contract.From(r); ok {
				panic(cv)
			}
			fault = faultOf(r)
		}
	}()
	return fn(value)
}

// Combine merges two validations with fn, accumulating every error in
// argument order when either side fails.
func Combine[E, A, B, C any](va Validation[E, A], vb Validation[E, B], fn func(A, B) C) Validation[E, C] {
	if va.valid && vb.valid {
		return Success[E](fn(va.value, vb.value))
	}
	merged := make([]E, 0, len(va.errors)+len(vb.errors))
	merged = append(merged, va.errors...)
	merged = append(merged, vb.errors...)
	return FailureOf[E, C](merged)
}

// Combine3 merges three validations with fn, accumulating every error
// in argument order when any side fails.
func Combine3[E, A, B, C, D any](va Validation[E, A], vb Validation[E, B], vc Validation[E, C], fn func(A, B, C) D) Validation[E, D] {
	if va.valid && vb.valid && vc.valid {
		return Success[E](fn(va.value, vb.value, vc.value))
	}
	merged := make([]E, 0, len(va.errors)+len(vb.errors)+len(vc.errors))
	merged = append(merged, va.errors...)
	merged = append(merged, vb.errors...)
	merged = append(merged, vc.errors...)
	return FailureOf[E, D](merged)
}
