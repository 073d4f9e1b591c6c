// Package batch runs sequences of result-returning operations either
// fail-fast (stop at the first failure) or fail-safe (run everything) and
// records what ran in a results.Collection.
package batch

import (
	"context"

	"github.com/ib-77/results/pkg/results"
	"github.com/ib-77/results/pkg/results/try"
)

// FailFast runs ops in order and stops at the first failure. The collection
// holds the results of the operations that ran and fails iff one of them did.
func FailFast(ops ...func() results.Result) results.Collection {
	return run(context.Background(), true, ops)
}

// FailSafe runs every op. The collection holds all results in order and
// succeeds iff all of them did.
func FailSafe(ops ...func() results.Result) results.Collection {
	return run(context.Background(), false, ops)
}

// FailFastContext is FailFast that also stops once ctx is done. The
// cancellation is recorded as a failed entry carrying the context error.
func FailFastContext(ctx context.Context, ops ...func() results.Result) results.Collection {
	return run(ctx, true, ops)
}

// FailSafeContext is FailSafe that stops once ctx is done.
func FailSafeContext(ctx context.Context, ops ...func() results.Result) results.Collection {
	return run(ctx, false, ops)
}

func FailFastOf[T any](ops ...func() results.Of[T]) results.Collection {
	return run(context.Background(), true, ops)
}

func FailSafeOf[T any](ops ...func() results.Of[T]) results.Collection {
	return run(context.Background(), false, ops)
}

// TryFailSafe runs every action through try.Try.
func TryFailSafe(actions ...func()) results.Collection {
	ops := make([]func() results.Result, 0, len(actions))
	for _, action := range actions {
		ops = append(ops, func() results.Result { return try.Try(action) })
	}
	return FailSafe(ops...)
}

func run[R results.Outcome](ctx context.Context,
	breakOnError bool, // exit on first error
	ops []func() R) results.Collection {

	executed := make([]results.Outcome, 0, len(ops))

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			executed = append(executed, results.Fail(err))
			break
		}

		r := op()
		executed = append(executed, r)

		if r.Failed() && breakOnError {
			break
		}
	}

	return results.Collect(executed...)
}
