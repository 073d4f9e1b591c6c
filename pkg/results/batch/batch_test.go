package batch

import (
	"context"
	"testing"

	"github.com/ib-77/results/pkg/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	calls []int
}

func (c *counter) ok(i int) func() results.Result {
	return func() results.Result {
		c.calls = append(c.calls, i)
		return results.Ok()
	}
}

func (c *counter) fail(i int, msg string) func() results.Result {
	return func() results.Result {
		c.calls = append(c.calls, i)
		return results.FailMsg(msg)
	}
}

func TestFailFast_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	c := &counter{}
	r := FailFast(c.ok(1), c.fail(2, "E2"), c.ok(3))

	assert.Equal(t, []int{1, 2}, c.calls)
	require.True(t, r.Failed())
	assert.Equal(t, "E2", r.FirstError().Message())
	assert.Equal(t, 2, r.Len())

	rs, ok := r.Results()
	require.True(t, ok)
	assert.True(t, rs[0].IsSuccess())
	assert.True(t, rs[1].Failed())
}

func TestFailFast_AllSucceed(t *testing.T) {
	t.Parallel()

	c := &counter{}
	r := FailFast(c.ok(1), c.ok(2))

	assert.True(t, r.IsSuccess())
	assert.Equal(t, []int{1, 2}, c.calls)
	assert.Equal(t, 2, r.Len())
}

func TestFailSafe_RunsEverything(t *testing.T) {
	t.Parallel()

	c := &counter{}
	r := FailSafe(c.ok(1), c.fail(2, "E2"), c.fail(3, "E3"), c.ok(4))

	assert.Equal(t, []int{1, 2, 3, 4}, c.calls)
	require.True(t, r.Failed())

	rs, ok := r.Results()
	require.True(t, ok)
	require.Len(t, rs, 4)
	assert.True(t, rs[0].IsSuccess())
	assert.Equal(t, "E2", rs[1].FirstError().Message())
	assert.Equal(t, "E3", rs[2].FirstError().Message())
	assert.True(t, rs[3].IsSuccess())

	errs := r.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "E2", errs[0].Message())
	assert.Equal(t, "E3", errs[1].Message())
}

func TestEmptyBatches(t *testing.T) {
	t.Parallel()

	ff := FailFast()
	assert.True(t, ff.IsSuccess())
	assert.Equal(t, 0, ff.Len())

	fs := FailSafe()
	assert.True(t, fs.IsSuccess())
	rs, ok := fs.Results()
	assert.True(t, ok)
	assert.Empty(t, rs)
}

func TestTyped(t *testing.T) {
	t.Parallel()

	r := FailSafeOf(
		func() results.Of[int] { return results.OkOf(1) },
		func() results.Of[int] { return results.FailMsgOf[int]("bad") },
	)
	require.True(t, r.Failed())

	first, ok := r.At(0)
	require.True(t, ok)
	assert.Equal(t, 1, first.(results.Of[int]).Value())

	calls := 0
	ff := FailFastOf(
		func() results.Of[string] { calls++; return results.FailMsgOf[string]("stop") },
		func() results.Of[string] { calls++; return results.OkOf("x") },
	)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, ff.Len())
}

func TestTryFailSafe(t *testing.T) {
	t.Parallel()

	ran := 0
	r := TryFailSafe(
		func() { ran++ },
		func() { ran++; panic("second") },
		func() { ran++ },
	)

	assert.Equal(t, 3, ran)
	require.True(t, r.Failed())

	rs, _ := r.Results()
	require.Len(t, rs, 3)
	assert.True(t, rs[0].IsSuccess())
	_, isException := rs[1].FirstError().(*results.ExceptionError)
	assert.True(t, isException)
	assert.True(t, rs[2].IsSuccess())
}

func TestContextVariants(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	c := &counter{}

	cancelling := func() results.Result {
		c.calls = append(c.calls, 2)
		cancel()
		return results.Ok()
	}

	r := FailSafeContext(ctx, c.ok(1), cancelling, c.ok(3))

	assert.Equal(t, []int{1, 2}, c.calls)
	require.True(t, r.Failed())
	assert.Equal(t, 3, r.Len())
	assert.ErrorIs(t, r.Err(), context.Canceled)
	assert.True(t, results.IsCancellationError(r.Err()))

	live := FailFastContext(context.Background(), c.ok(4))
	assert.True(t, live.IsSuccess())
}
