package lite

import (
	"context"
	"sync"

	"github.com/rvk-77/outcome/pkg/outcome"
	"github.com/rvk-77/outcome/pkg/outcome/core"
	"github.com/rvk-77/outcome/pkg/outcome/mass"
)

func Run[T, E any](ctx context.Context, inputCh <-chan outcome.Outcome[T, E],
	engine func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E],
	lines int) <-chan outcome.Outcome[T, E] {
	return RunWith(ctx, inputCh, engine, core.CancellationHandlers[outcome.Outcome[T, E], outcome.Outcome[T, E]]{}, nil, lines)
}

// RunWith is Run with explicit cancellation handlers and a success callback
// per emitted outcome.
func RunWith[T, E any](ctx context.Context, inputCh <-chan outcome.Outcome[T, E],
	engine func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E],
	handlers core.CancellationHandlers[outcome.Outcome[T, E], outcome.Outcome[T, E]],
	onSuccess func(ctx context.Context, in outcome.Outcome[T, E]), lines int) <-chan outcome.Outcome[T, E] {

	out := make(chan outcome.Outcome[T, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Turnout composes a stage whose engine may change both the value and the
// failure type, e.g. the With stage which moves E to Attributed[E, W].
func Turnout[In, EIn, Out, EOut any](ctx context.Context, inputCh <-chan outcome.Outcome[In, EIn],
	engine func(ctx context.Context, input outcome.Outcome[In, EIn]) <-chan outcome.Outcome[Out, EOut],
	lines int) <-chan outcome.Outcome[Out, EOut] {
	return TurnoutWith(ctx, inputCh, engine, core.CancellationHandlers[outcome.Outcome[In, EIn], outcome.Outcome[Out, EOut]]{}, nil, lines)
}

func TurnoutWith[In, EIn, Out, EOut any](ctx context.Context, inputCh <-chan outcome.Outcome[In, EIn],
	engine func(ctx context.Context, input outcome.Outcome[In, EIn]) <-chan outcome.Outcome[Out, EOut],
	handlers core.CancellationHandlers[outcome.Outcome[In, EIn], outcome.Outcome[Out, EOut]],
	onSuccess func(ctx context.Context, in outcome.Outcome[Out, EOut]), lines int) <-chan outcome.Outcome[Out, EOut] {

	out := make(chan outcome.Outcome[Out, EOut])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// With lifts the failure-context adapter into a pipeline stage: failures
// leave the stage carrying Attributed[E, W], successes pass through.
func With[T, E, W any](with W) func(ctx context.Context,
	input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, outcome.Attributed[E, W]] {
	return func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, outcome.Attributed[E, W]] {
		return mass.Attaching(ctx, input, with, nil)
	}
}

func Validate[T, E any](validate func(ctx context.Context, in T) (valid bool, failure E)) func(ctx context.Context,
	input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
	return func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
		return mass.Validating(ctx, input, validate, nil)
	}
}

func Switch[In, Out, E any](switchOnSuccess func(ctx context.Context, r In) outcome.Outcome[Out, E]) func(ctx context.Context,
	input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
	return func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
		return mass.Switching(ctx, input, switchOnSuccess, nil)
	}
}

func Map[In, Out, E any](mapOnSuccess func(ctx context.Context, r In) Out) func(ctx context.Context,
	input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
	return func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
		return mass.Mapping(ctx, input, mapOnSuccess, nil)
	}
}

func DoubleMap[In, Out, E any](
	mapOnSuccess func(ctx context.Context, r In) Out,
	mapOnFailure func(ctx context.Context, failure E) Out) func(ctx context.Context,
	input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
	return func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
		return mass.DoubleMapping(ctx, input, mapOnSuccess, mapOnFailure, nil)
	}
}

func Tee[T, E any](sideEffect func(ctx context.Context, r outcome.Outcome[T, E])) func(ctx context.Context,
	input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
	return func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
		return mass.Teeing(ctx, input, sideEffect, nil)
	}
}

func DoubleTee[T, E any](sideEffect func(ctx context.Context, r T),
	sideEffectOnFailure func(ctx context.Context, failure E)) func(ctx context.Context,
	input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
	return func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
		return mass.DoubleTeeing(ctx, input, sideEffect, sideEffectOnFailure, nil)
	}
}

func Try[In, Out any](
	onTryExecute func(ctx context.Context, r In) (Out, error)) func(ctx context.Context,
	input outcome.Outcome[In, error]) <-chan outcome.Outcome[Out, error] {
	return func(ctx context.Context, input outcome.Outcome[In, error]) <-chan outcome.Outcome[Out, error] {
		return mass.Trying(ctx, input, onTryExecute, nil)
	}
}

func Finally[In, Out, E any](ctx context.Context, input <-chan outcome.Outcome[In, E],
	handlers mass.FinallyHandlers[In, Out, E]) <-chan Out {
	return mass.Finalizing(ctx, input, handlers, mass.FinallyCancelHandlers[In, Out, E]{}, nil)
}

func FinallyWith[In, Out, E any](ctx context.Context, input <-chan outcome.Outcome[In, E],
	handlers mass.FinallyHandlers[In, Out, E],
	cancelHandlers mass.FinallyCancelHandlers[In, Out, E],
	onSuccessResult func(ctx context.Context, out Out)) <-chan Out {
	return mass.Finalizing(ctx, input, handlers, cancelHandlers, onSuccessResult)
}
