package maybe

// Boundary conversions into foreign container types. Each takes the
// target type's smart constructors as explicit capabilities, so this
// package never imports the target and no dependency cycle can form
// between the three container kinds.

// ToEither folds the Maybe into a disjunction type through its two
// constructors. Nothing carries no payload, so the negative
// constructor takes no argument.
func ToEither[T, C any](m Maybe[T], right func(T) C, left func() C) C {
	if m.present {
		return right(m.value)
	}
	return left()
}

// ToValidation folds the Maybe into an aggregating disjunction type
// through its two constructors.
func ToValidation[T, C any](m Maybe[T], success func(T) C, failure func() C) C {
	if m.present {
		return success(m.value)
	}
	return failure()
}

// ToDeferred bridges the Maybe into a deferred-computation type via
// its two primitive factories: Just resolves with the payload, Nothing
// rejects with nil. One-shot and synchronous.
func ToDeferred[T, P any](m Maybe[T], resolve func(T) P, reject func(any) P) P {
	if m.present {
		return resolve(m.value)
	}
	return reject(nil)
}
