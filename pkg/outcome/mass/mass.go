package mass

import (
	"context"

	"github.com/rvk-77/outcome/pkg/outcome"
	"github.com/rvk-77/outcome/pkg/outcome/solo"
)

// lift runs op in its own goroutine and forwards the produced outcome to the
// returned channel, routing to onCancel when ctx ends before the handoff.
func lift[In, Out, EIn, EOut any](ctx context.Context, input outcome.Outcome[In, EIn],
	op func(ctx context.Context) outcome.Outcome[Out, EOut],
	onCancel func(ctx context.Context, in outcome.Outcome[In, EIn])) <-chan outcome.Outcome[Out, EOut] {

	ch := make(chan outcome.Outcome[Out, EOut])
	out := make(chan outcome.Outcome[Out, EOut])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- op(ctx)
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

// Attaching lifts outcome.With over a channel stage: the context value is
// attached to the failure path, a success passes through unchanged.
func Attaching[T, E, W any](ctx context.Context, input outcome.Outcome[T, E], with W,
	onCancel func(ctx context.Context, in outcome.Outcome[T, E])) <-chan outcome.Outcome[T, outcome.Attributed[E, W]] {

	return lift(ctx, input, func(ctx context.Context) outcome.Outcome[T, outcome.Attributed[E, W]] {
		return outcome.With(input, with)
	}, onCancel)
}

func Validating[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	validate func(ctx context.Context, in T) (valid bool, failure E),
	onCancel func(ctx context.Context, in outcome.Outcome[T, E])) <-chan outcome.Outcome[T, E] {

	return lift(ctx, input, func(ctx context.Context) outcome.Outcome[T, E] {
		return solo.AndValidate(ctx, input, validate)
	}, onCancel)
}

func Switching[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	switchOnSuccess func(ctx context.Context, r In) outcome.Outcome[Out, E],
	onCancel func(ctx context.Context, in outcome.Outcome[In, E])) <-chan outcome.Outcome[Out, E] {

	return lift(ctx, input, func(ctx context.Context) outcome.Outcome[Out, E] {
		return solo.Switch(ctx, input, switchOnSuccess)
	}, onCancel)
}

func Mapping[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	mapOnSuccess func(ctx context.Context, r In) Out,
	onCancel func(ctx context.Context, in outcome.Outcome[In, E])) <-chan outcome.Outcome[Out, E] {

	return lift(ctx, input, func(ctx context.Context) outcome.Outcome[Out, E] {
		return solo.Map(ctx, input, mapOnSuccess)
	}, onCancel)
}

func DoubleMapping[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	mapOnSuccess func(ctx context.Context, r In) Out,
	mapOnFailure func(ctx context.Context, failure E) Out,
	onCancel func(ctx context.Context, in outcome.Outcome[In, E])) <-chan outcome.Outcome[Out, E] {

	return lift(ctx, input, func(ctx context.Context) outcome.Outcome[Out, E] {
		return solo.DoubleMap(ctx, input, mapOnSuccess, mapOnFailure)
	}, onCancel)
}

func Teeing[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	sideEffect func(ctx context.Context, r outcome.Outcome[T, E]),
	onCancel func(ctx context.Context, in outcome.Outcome[T, E])) <-chan outcome.Outcome[T, E] {

	return lift(ctx, input, func(ctx context.Context) outcome.Outcome[T, E] {
		return solo.Tee(ctx, input, sideEffect)
	}, onCancel)
}

func DoubleTeeing[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	sideEffect func(ctx context.Context, r T),
	sideEffectOnFailure func(ctx context.Context, failure E),
	onCancel func(ctx context.Context, in outcome.Outcome[T, E])) <-chan outcome.Outcome[T, E] {

	return lift(ctx, input, func(ctx context.Context) outcome.Outcome[T, E] {
		return solo.DoubleTee(ctx, input, sideEffect, sideEffectOnFailure)
	}, onCancel)
}

func Trying[In, Out any](ctx context.Context, input outcome.Outcome[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in outcome.Outcome[In, error])) <-chan outcome.Outcome[Out, error] {

	return lift(ctx, input, func(ctx context.Context) outcome.Outcome[Out, error] {
		return solo.Try(ctx, input, onTryExecute)
	}, onCancel)
}

type FinallyHandlers[In, Out, E any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, failure E) Out
}

type FinallyCancelHandlers[In, Out, E any] struct {
	OnBreak       func(ctx context.Context, in outcome.Outcome[In, E]) Out
	OnCancelValue func(ctx context.Context, in outcome.Outcome[In, E],
		brokenF func(ctx context.Context, in outcome.Outcome[In, E]) Out, outCh chan<- Out)
	OnCancelValues func(ctx context.Context, inputCh <-chan outcome.Outcome[In, E],
		brokenF func(ctx context.Context, in outcome.Outcome[In, E]) Out, outCh chan<- Out)
	OnCancelResult  func(ctx context.Context, out Out, outCh chan<- Out)
	OnCancelResults func(ctx context.Context, inputCh <-chan Out, outCh chan<- Out)
}

func Finalizing[In, Out, E any](ctx context.Context, inputCh <-chan outcome.Outcome[In, E],
	handlers FinallyHandlers[In, Out, E],
	cancelHandlers FinallyCancelHandlers[In, Out, E],
	onSuccessResult func(ctx context.Context, out Out)) <-chan Out {

	ch := make(chan Out)
	out := make(chan Out)

	go func() {
		defer close(ch)

		if ctx.Err() != nil {
			if cancelHandlers.OnCancelValues != nil {
				cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
			}
			return
		}

		for {
			select {
			case <-ctx.Done():
				if cancelHandlers.OnCancelValues != nil {
					cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
				}
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnFailure)
				if ctx.Err() != nil {
					if cancelHandlers.OnCancelValue != nil {
						cancelHandlers.OnCancelValue(ctx, in, cancelHandlers.OnBreak, ch)
					}
					if cancelHandlers.OnCancelValues != nil {
						cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
					}
					return
				}

				select {
				case <-ctx.Done():
					if cancelHandlers.OnCancelValue != nil {
						cancelHandlers.OnCancelValue(ctx, in, cancelHandlers.OnBreak, ch)
					}
					if cancelHandlers.OnCancelValues != nil {
						cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
					}
					return
				case ch <- res:
				}
			}
		}
	}()

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				if cancelHandlers.OnCancelResults != nil {
					cancelHandlers.OnCancelResults(ctx, ch, out)
				}
				return
			case finalized, ok := <-ch:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
					if cancelHandlers.OnCancelResult != nil {
						cancelHandlers.OnCancelResult(ctx, finalized, out)
					}
					return
				case out <- finalized:
					if onSuccessResult != nil {
						onSuccessResult(ctx, finalized)
					}
				}
			}
		}
	}()

	return out
}
