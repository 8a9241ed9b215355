package validation

// Boundary conversions into foreign container types, taking the target
// type's smart constructors as explicit capabilities so no dependency
// cycle can form between the three container kinds.

// ToEither folds the Validation into a single-error disjunction type.
// The whole error sequence becomes the one left payload: the arity is
// collapsed, the data is not.
func ToEither[E, T, C any](v Validation[E, T], right func(T) C, left func([]E) C) C {
	if v.valid {
		return right(v.value)
	}
	return left(v.errors)
}

// ToMaybe folds the Validation into an optional type. The error
// sequence is discarded: the target's absent constructor takes no
// argument.
func ToMaybe[E, T, C any](v Validation[E, T], present func(T) C, absent func() C) C {
	if v.valid {
		return present(v.value)
	}
	return absent()
}

// ToDeferred bridges the Validation into a deferred-computation type
// via its two primitive factories: Success resolves with the value,
// Failure rejects with the error sequence. One-shot and synchronous.
func ToDeferred[E, T, P any](v Validation[E, T], resolve func(T) P, reject func(any) P) P {
	if v.valid {
		return resolve(v.value)
	}
	return reject(v.errors)
}
