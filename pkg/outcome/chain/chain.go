package chain

import (
	"context"

	"github.com/rvk-77/outcome/pkg/outcome"
	"github.com/rvk-77/outcome/pkg/outcome/solo"
)

// Chain wraps an outcome.Outcome with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result outcome.Outcome[T, E]
}

// Start creates a new chain from an outcome.Outcome
func Start[T, E any](ctx context.Context, result outcome.Outcome[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: outcome.Success[T, E](value),
	}
}

// Result returns the underlying outcome.Outcome
func (c *Chain[T, E]) Result() outcome.Outcome[T, E] {
	return c.result
}

// Then chains a function that returns outcome.Outcome[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) outcome.Outcome[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// With attaches a context value to the failure path, keeping a success
// untouched. This is the fluent form of outcome.With:
//
//	chain.With(chain.Start(ctx, readFile(path)), path)
func With[T, E, W any](c *Chain[T, E], with W) *Chain[T, outcome.Attributed[E, W]] {
	return &Chain[T, outcome.Attributed[E, W]]{
		ctx:    c.ctx,
		result: outcome.With(c.result, with),
	}
}

// WithFunc is With with deferred context construction
func WithFunc[T, E, W any](c *Chain[T, E], with func() W) *Chain[T, outcome.Attributed[E, W]] {
	return &Chain[T, outcome.Attributed[E, W]]{
		ctx:    c.ctx,
		result: outcome.WithFunc(c.result, with),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result outcome.Outcome[T, E]) {
				if result.IsSuccess() {
					onSuccess(ctx, result.Value())
				}
			}),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
