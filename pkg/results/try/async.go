package try

import (
	"context"
	"errors"

	"github.com/ib-77/results/pkg/results"
)

// ErrNoResult is reported by Await when the channel closed without a value.
var ErrNoResult = errors.New("async operation produced no result")

// TryAsync runs fn on its own goroutine with the same capture rules as TryOf.
// The returned channel delivers exactly one result and is then closed.
func TryAsync[T any](ctx context.Context, fn func(ctx context.Context) results.Of[T],
	onCatch ...Catch) <-chan results.Of[T] {

	return async(func() results.Of[T] {
		return TryOf(func() results.Of[T] { return fn(ctx) }, onCatch...)
	})
}

// TryAsyncErr runs fn on its own goroutine; a returned error or a panic
// becomes the failure.
func TryAsyncErr(ctx context.Context, fn func(ctx context.Context) error, onCatch ...Catch) <-chan results.Result {
	return async(func() results.Result {
		return TryErr(func() error { return fn(ctx) }, onCatch...)
	})
}

func async[R any](do func() R) <-chan R {
	out := make(chan R, 1)

	go func() {
		defer close(out)
		out <- do()
	}()

	return out
}

// Await waits for the result of TryAsync. If ctx is done first, the result is
// a failure wrapping the context error.
func Await[T any](ctx context.Context, ch <-chan results.Of[T]) results.Of[T] {
	r, err := await(ctx, ch)
	if err != nil {
		return results.FailOf[T](results.NewExceptionError(err))
	}
	return r
}

// AwaitResult waits for the result of TryAsyncErr.
func AwaitResult(ctx context.Context, ch <-chan results.Result) results.Result {
	r, err := await(ctx, ch)
	if err != nil {
		return results.Fail(results.NewExceptionError(err))
	}
	return r
}

func await[R any](ctx context.Context, ch <-chan R) (R, error) {
	var zero R

	select {
	case r, ok := <-ch:
		if !ok {
			return zero, ErrNoResult
		}
		return r, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
