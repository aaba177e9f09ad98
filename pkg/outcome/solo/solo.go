package solo

import (
	"context"
	"errors"

	"github.com/rvk-77/outcome/pkg/outcome"
)

func Succeed[T, E any](input T) outcome.Outcome[T, E] {
	return outcome.Success[T, E](input)
}

func Fail[T, E any](failure E) outcome.Outcome[T, E] {
	return outcome.Failure[T, E](failure)
}

func With[T, E, W any](input outcome.Outcome[T, E], with W) outcome.Outcome[T, outcome.Attributed[E, W]] {
	return outcome.With(input, with)
}

func WithFunc[T, E, W any](input outcome.Outcome[T, E], with func() W) outcome.Outcome[T, outcome.Attributed[E, W]] {
	return outcome.WithFunc(input, with)
}

func Validate[T, E any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, failure E)) outcome.Outcome[T, E] {
	return AndValidate(ctx, Succeed[T, E](input), validate)
}

func AndValidate[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	validate func(ctx context.Context, in T) (valid bool, failure E)) outcome.Outcome[T, E] {

	if input.IsSuccess() {

		if isValid, failure := validate(ctx, input.Value()); isValid {
			return outcome.Success[T, E](input.Value())
		} else {
			return outcome.Failure[T, E](failure)
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input outcome.Outcome[T, error],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in outcome.Outcome[T, error]) outcome.Outcome[T, error]) outcome.Outcome[T, error] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current outcome.Outcome[T, error]) outcome.Outcome[T, error] {

			if current.IsFailure() {
				e := outcome.Errs(err)
				e = append(e, current.Failure())
				err = errors.Join(e...)
			}

			if outcome.IsNil(err) {
				return current
			}

			return outcome.Failure[T, error](err)
		},
		inputsF...,
	)
}

func Switch[In, Out, E any](ctx context.Context,
	input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) outcome.Outcome[Out, E]) outcome.Outcome[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return outcome.FailureFrom[In, Out](input)
}

func Map[In, Out, E any](ctx context.Context,
	input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out) outcome.Outcome[Out, E] {

	if input.IsSuccess() {
		return outcome.Success[Out, E](onSuccess(ctx, input.Value()))
	}
	return outcome.FailureFrom[In, Out](input)
}

// MapFailure transforms the failure value and leaves a success untouched.
func MapFailure[T, E, F any](ctx context.Context,
	input outcome.Outcome[T, E],
	onFailure func(ctx context.Context, failure E) F) outcome.Outcome[T, F] {

	if input.IsSuccess() {
		return outcome.Success[T, F](input.Value())
	}
	return outcome.Failure[T, F](onFailure(ctx, input.Failure()))
}

func Tee[T, E any](ctx context.Context,
	input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, r outcome.Outcome[T, E])) outcome.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T, E any](ctx context.Context,
	input outcome.Outcome[T, E],
	condition func(ctx context.Context, r outcome.Outcome[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r outcome.Outcome[T, E])) outcome.Outcome[T, E] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, failure E)) outcome.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Failure())
	}

	return input
}

func DoubleMap[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, failure E) Out) outcome.Outcome[Out, E] {

	if input.IsSuccess() {
		return outcome.Success[Out, E](onSuccess(ctx, input.Value()))
	}

	onFailure(ctx, input.Failure())

	return outcome.FailureFrom[In, Out](input)
}

func Try[In, Out any](ctx context.Context, input outcome.Outcome[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Outcome[Out, error] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return outcome.Failure[Out, error](err)
		}

		return outcome.Success[Out, error](out)
	}

	return outcome.FailureFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input outcome.Outcome[T, error],
	maybeErr func(ctx context.Context, in T) error) outcome.Outcome[T, error] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return outcome.Failure[T, error](err)
		}
		return input
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, failure E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Failure())
}

func Join[T, E any](ctx context.Context,
	input outcome.Outcome[T, E],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current outcome.Outcome[T, E]) outcome.Outcome[T, E],
	inputsF ...func(ctx context.Context, in outcome.Outcome[T, E]) outcome.Outcome[T, E]) outcome.Outcome[T, E] {

	if len(inputsF) == 0 || concat == nil || !outcome.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !outcome.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !outcome.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
