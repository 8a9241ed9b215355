package validation

// Collection combinators over lists of Validation values. All preserve
// input order; none mutate their input.

// FailuresOf flattens the error sequences of every Failure in order,
// skipping Success elements.
func FailuresOf[E, T any](vs []Validation[E, T]) []E {
	out := make([]E, 0)
	for _, v := range vs {
		if !v.valid {
			out = append(out, v.errors...)
		}
	}
	return out
}

// SuccessesOf collects the value of every Success in order, skipping
// Failure elements.
func SuccessesOf[E, T any](vs []Validation[E, T]) []T {
	out := make([]T, 0)
	for _, v := range vs {
		if v.valid {
			out = append(out, v.value)
		}
	}
	return out
}

// All collects every value in input order. The first Failure
// short-circuits and is returned as-is, errors unmerged; aggregation
// across elements is Concat's job, not All's.
func All[E, T any](vs ...Validation[E, T]) Validation[E, []T] {
	values := make([]T, 0, len(vs))
	for _, v := range vs {
		if !v.valid {
			return Validation[E, []T]{errors: v.errors}
		}
		values = append(values, v.value)
	}
	return Success[E](values)
}

// Sequence collects every value, accumulating the errors of every
// Failure in input order. It is the aggregating counterpart of All.
func Sequence[E, T any](vs []Validation[E, T]) Validation[E, []T] {
	values := make([]T, 0, len(vs))
	errs := make([]E, 0)
	for _, v := range vs {
		if v.valid {
			values = append(values, v.value)
		} else {
			errs = append(errs, v.errors...)
		}
	}
	if len(errs) > 0 {
		return FailureOf[E, []T](errs)
	}
	return Success[E](values)
}

// Any folds the first Success into a caller-supplied optional type via
// just, or returns nothing() when no Success exists. A nil list yields
// nothing() immediately.
func Any[E, T, C any](nothing func() C, just func(T) C, vs []Validation[E, T]) C {
	if vs == nil {
		return nothing()
	}
	for _, v := range vs {
		if v.valid {
			return just(v.value)
		}
	}
	return nothing()
}

// Each invokes fn on every element in order, stopping after the first
// Failure. The input list is returned unreduced.
func Each[E, T any](fn func(Validation[E, T]), vs []Validation[E, T]) []Validation[E, T] {
	for _, v := range vs {
		fn(v)
		if !v.valid {
			break
		}
	}
	return vs
}

// Lift applies fn to every Success payload, skipping Failure. A nil
// list yields an empty slice.
func Lift[E, T, U any](fn func(T) U, vs []Validation[E, T]) []U {
	out := make([]U, 0, len(vs))
	for _, v := range vs {
		if v.valid {
			out = append(out, fn(v.value))
		}
	}
	return out
}

// MapIn maps fn through each container's own map, returning the new
// containers. A nil list yields an empty slice.
func MapIn[E, T, U any](fn func(T) U, vs []Validation[E, T]) []Validation[E, U] {
	out := make([]Validation[E, U], 0, len(vs))
	lifted := Map[E, T, U](fn)
	for _, v := range vs {
		out = append(out, lifted(v))
	}
	return out
}
