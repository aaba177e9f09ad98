package core

import (
	"context"
	"sync"

	"github.com/rvk-77/outcome/pkg/outcome"
	"github.com/rvk-77/outcome/pkg/outcome/solo"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {

			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanFromArgsOutcomes[T, E any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan outcome.Outcome[T, E] {
	in := make(chan outcome.Outcome[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- solo.Succeed[T, E](v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs[T](ctx, value)
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	res := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = v
			return
		case <-ctx.Done():
			return
		}
	}()
	wg.Wait()
	return res
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs[T](ctx, values...)
}

func ToChanManyOutcomesWithHandlers[T, E any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan outcome.Outcome[T, E] {
	return ToChanFromArgsOutcomes[T, E](ctx, handlers, values...)
}

func ToChanManyOutcomes[T, E any](ctx context.Context, values []T) <-chan outcome.Outcome[T, E] {
	return ToChanFromArgsOutcomes[T, E](ctx, ToChanHandlers[T]{}, values...)
}

func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
