package outcome

// Attributed pairs a failure with the context it happened in, e.g. the path
// of a failed read or the id of a failed request. Downstream code converts
// the pair into its own failure type; this package only builds the pair.
type Attributed[E, W any] struct {
	Failure E
	Context W
}

// With attaches a context value to the failure of o. A failed Outcome becomes
// a failure holding Attributed{failure, with}; a successful Outcome passes
// through unchanged and the context value is never observable in the output.
// The original failure value is kept verbatim as the pair's first component.
//
// Applying With twice nests the pairs, it never merges them:
//
//	With(With(Failure[int, string]("x"), "step1"), "step2")
//
// yields Attributed{Attributed{"x", "step1"}, "step2"}.
func With[T, E, W any](o Outcome[T, E], with W) Outcome[T, Attributed[E, W]] {
	if o.isSuccess {
		return Outcome[T, Attributed[E, W]]{
			value:     o.value,
			isSuccess: true,
			createdAt: o.createdAt,
			hasValue:  o.hasValue,
			id:        o.id,
		}
	}
	return Outcome[T, Attributed[E, W]]{
		failure:   Attributed[E, W]{Failure: o.failure, Context: with},
		isSuccess: false,
		createdAt: o.createdAt,
		hasValue:  false,
		id:        o.id,
	}
}

// WithFunc is With with deferred context construction: with is only called on
// the failure path, so expensive context values cost nothing on success.
func WithFunc[T, E, W any](o Outcome[T, E], with func() W) Outcome[T, Attributed[E, W]] {
	if o.isSuccess {
		return Outcome[T, Attributed[E, W]]{
			value:     o.value,
			isSuccess: true,
			createdAt: o.createdAt,
			hasValue:  o.hasValue,
			id:        o.id,
		}
	}
	return Outcome[T, Attributed[E, W]]{
		failure:   Attributed[E, W]{Failure: o.failure, Context: with()},
		isSuccess: false,
		createdAt: o.createdAt,
		hasValue:  false,
		id:        o.id,
	}
}
