package either

// Collection combinators over lists of Either values. All preserve
// input order; none mutate their input.

// All collects every right value in input order. The first Left
// short-circuits and is returned as-is.
func All[L, R any](es ...Either[L, R]) Either[L, []R] {
	values := make([]R, 0, len(es))
	for _, e := range es {
		if !e.isRight {
			return Left[L, []R](e.left)
		}
		values = append(values, e.right)
	}
	return Right[L](values)
}

// Any returns the first Right, or the first Left when no Right exists.
// An empty list yields Left of L's zero value.
func Any[L, R any](es ...Either[L, R]) Either[L, R] {
	for _, e := range es {
		if e.isRight {
			return e
		}
	}
	if len(es) > 0 {
		return es[0]
	}
	return Either[L, R]{}
}

// Each invokes fn on every element in order, stopping after the first
// Left. The input list is returned unreduced.
func Each[L, R any](fn func(Either[L, R]), es []Either[L, R]) []Either[L, R] {
	for _, e := range es {
		fn(e)
		if !e.isRight {
			break
		}
	}
	return es
}

// Lift applies fn to every right payload, skipping Left. A nil list
// yields an empty slice.
func Lift[L, R, U any](fn func(R) U, es []Either[L, R]) []U {
	out := make([]U, 0, len(es))
	for _, e := range es {
		if e.isRight {
			out = append(out, fn(e.right))
		}
	}
	return out
}

// MapIn maps fn through each container's own map, returning the new
// containers. A nil list yields an empty slice.
func MapIn[L, R, U any](fn func(R) U, es []Either[L, R]) []Either[L, U] {
	out := make([]Either[L, U], 0, len(es))
	lifted := Map[L, R, U](fn)
	for _, e := range es {
		out = append(out, lifted(e))
	}
	return out
}
