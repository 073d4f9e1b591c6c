package chain

import (
	"context"

	"github.com/ib-77/results/pkg/results"
	"github.com/ib-77/results/pkg/results/try"
)

// Chain wraps a results.Of with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result results.Of[T]
}

// Start creates a new chain from a results.Of
func Start[T any](ctx context.Context, result results.Of[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, results.OkOf(value))
}

// Result returns the underlying results.Of
func (c *Chain[T]) Result() results.Of[T] {
	return c.result
}

// Then chains a function that returns results.Of[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) results.Of[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: results.Then(c.result, func(v T) results.Of[U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error); the error and any panic
// become the failure
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error), onCatch ...try.Catch) *Chain[U] {
	return Then(c, func(ctx context.Context, v T) results.Of[U] {
		return try.TryValue(func() (U, error) { return tryOnSuccess(ctx, v) }, onCatch...)
	})
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: results.Map(c.result, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: results.Tee(c.result, func(v T) {
			onSuccess(c.ctx, v)
		}),
	}
}

// Log attaches a log entry to the current result
func (c *Chain[T]) Log(msg string) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, result: c.result.Log(msg)}
}

// Finally collapses the chain into a final value using results.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, []results.Error) U) U {
	return results.Finally(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(errs []results.Error) U { return onFailure(c.ctx, errs) })
}
