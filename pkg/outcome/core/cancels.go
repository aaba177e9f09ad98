package core

import "context"

// CancelValues maps every value still readable from inputCh through brokenF
// and emits the results to outCh. The two-variant Outcome cannot fabricate a
// failure for an arbitrary E, so the mapping is always caller-supplied. Does
// nothing when process-remaining is disabled on ctx.
func CancelValues[In, Out any](ctx context.Context, inputCh <-chan In,
	brokenF func(ctx context.Context, in In) Out, outCh chan<- Out) {

	required := IsProcessRemainingEnabled(ctx, true)

	if required {
		for in := range inputCh {
			outCh <- brokenF(ctx, in)
		}
	}
}

// CancelValue is CancelValues for a single unprocessed value.
func CancelValue[In, Out any](ctx context.Context, in In,
	brokenF func(ctx context.Context, in In) Out, outCh chan<- Out) {

	required := IsProcessRemainingEnabled(ctx, true)

	if required {
		outCh <- brokenF(ctx, in)
	}
}

// CancelResult forwards an already produced result that could not be handed
// off before cancellation.
func CancelResult[T any](ctx context.Context, out T, outCh chan<- T) {
	required := IsProcessRemainingEnabled(ctx, true)

	if required {
		outCh <- out
	}
}

// CancelResults forwards every result still readable from inputCh.
func CancelResults[T any](ctx context.Context, inputCh <-chan T, outCh chan<- T) {
	required := IsProcessRemainingEnabled(ctx, true)

	if required {
		for in := range inputCh {
			outCh <- in
		}
	}
}
