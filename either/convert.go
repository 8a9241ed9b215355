package either

// Boundary conversions into foreign container types, taking the target
// type's smart constructors as explicit capabilities so no dependency
// cycle can form between the three container kinds.

// ToMaybe folds the Either into an optional type. The left payload is
// discarded: the target's absent constructor takes no argument.
func ToMaybe[L, R, C any](e Either[L, R], present func(R) C, absent func() C) C {
	if e.isRight {
		return present(e.right)
	}
	return absent()
}

// ToValidation folds the Either into an aggregating disjunction type.
// The failure constructor receives the single left payload; the target
// is expected to wrap it as a singleton error sequence.
func ToValidation[L, R, C any](e Either[L, R], success func(R) C, failure func(L) C) C {
	if e.isRight {
		return success(e.right)
	}
	return failure(e.left)
}

// ToDeferred bridges the Either into a deferred-computation type via
// its two primitive factories: Right resolves with the payload, Left
// rejects with the left payload. One-shot and synchronous.
func ToDeferred[L, R, P any](e Either[L, R], resolve func(R) P, reject func(any) P) P {
	if e.isRight {
		return resolve(e.right)
	}
	return reject(e.left)
}
