package maybe

// Collection combinators over lists of Maybe values. All preserve
// input order; none mutate their input.

// All collects every contained value in input order. The first Nothing
// short-circuits to Nothing.
func All[T any](ms ...Maybe[T]) Maybe[[]T] {
	values := make([]T, 0, len(ms))
	for _, m := range ms {
		if !m.present {
			return Nothing[[]T]()
		}
		values = append(values, m.value)
	}
	return Just(values)
}

// Any returns the first Just, or Nothing when none exists.
func Any[T any](ms ...Maybe[T]) Maybe[T] {
	for _, m := range ms {
		if m.present {
			return m
		}
	}
	return Nothing[T]()
}

// Each invokes fn on every element in order, stopping after the first
// Nothing. The input list is returned unreduced.
func Each[T any](fn func(Maybe[T]), ms []Maybe[T]) []Maybe[T] {
	for _, m := range ms {
		fn(m)
		if !m.present {
			break
		}
	}
	return ms
}

// Lift applies fn to every present payload, skipping Nothing. A nil
// list yields an empty slice.
func Lift[T, U any](fn func(T) U, ms []Maybe[T]) []U {
	out := make([]U, 0, len(ms))
	for _, m := range ms {
		if m.present {
			out = append(out, fn(m.value))
		}
	}
	return out
}

// MapIn maps fn through each container's own map, returning the new
// containers. A nil list yields an empty slice.
func MapIn[T, U any](fn func(T) U, ms []Maybe[T]) []Maybe[U] {
	out := make([]Maybe[U], 0, len(ms))
	lifted := Map(fn)
	for _, m := range ms {
		out = append(out, lifted(m))
	}
	return out
}
