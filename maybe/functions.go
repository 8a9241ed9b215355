package maybe

// Curried free functions mirroring every transformation, container
// last, so call sites compose left-to-right in pipelines. Same-type
// operations are also bound as methods; the type-changing ones live
// only here because Go methods cannot introduce type parameters.

// Map applies fn to the contained value, re-wrapping the result
// through OfNullable.
func Map[T, U any](fn func(T) U) func(Maybe[T]) Maybe[U] {
	return func(m Maybe[T]) Maybe[U] {
		if !m.present {
			return Nothing[U]()
		}
		return OfNullable(fn(m.value))
	}
}

// Chain applies a function that itself returns a Maybe. Nothing
// short-circuits without invoking fn; the result is not re-wrapped.
func Chain[T, U any](fn func(T) Maybe[U]) func(Maybe[T]) Maybe[U] {
	return func(m Maybe[T]) Maybe[U] {
		if !m.present {
			return Nothing[U]()
		}
		return fn(m.value)
	}
}

// Ap applies a wrapped function to a wrapped value. The result is Just
// only when both sides are present.
func Ap[T, U any](mf Maybe[func(T) U]) func(Maybe[T]) Maybe[U] {
	return func(m Maybe[T]) Maybe[U] {
		if !mf.present || !m.present {
			return Nothing[U]()
		}
		return OfNullable(mf.value(m.value))
	}
}

// Filter keeps Just only when the predicate holds.
func Filter[T any](predicate func(T) bool) func(Maybe[T]) Maybe[T] {
	return func(m Maybe[T]) Maybe[T] {
		return m.Filter(predicate)
	}
}

// Alt substitutes the supplied alternative for Nothing.
func Alt[T any](supplier func() Maybe[T]) func(Maybe[T]) Maybe[T] {
	return func(m Maybe[T]) Maybe[T] {
		return m.OrElse(supplier)
	}
}

// Recover substitutes a value for Nothing, through OfNullable.
func Recover[T any](value T) func(Maybe[T]) Maybe[T] {
	return func(m Maybe[T]) Maybe[T] {
		return m.Recover(value)
	}
}

// GetOrElse unwraps with a default.
func GetOrElse[T any](defaultValue T) func(Maybe[T]) T {
	return func(m Maybe[T]) T {
		return m.GetOrElse(defaultValue)
	}
}

// Tap invokes fn with the contained value and passes the container
// through unchanged.
func Tap[T any](fn func(T)) func(Maybe[T]) Maybe[T] {
	return func(m Maybe[T]) Maybe[T] {
		return m.IfPresent(fn)
	}
}

// Fold reduces the Maybe to a single value, running exactly one of the
// two branches.
func Fold[T, U any](onAbsent func() U, onPresent func(T) U) func(Maybe[T]) U {
	return func(m Maybe[T]) U {
		if m.present {
			return onPresent(m.value)
		}
		return onAbsent()
	}
}
