package results

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()

	calls := 0
	var got int
	want := OkOf("6")

	out := Then(OkOf(3), func(v int) Of[string] {
		calls++
		got = v
		return want
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, got)
	assert.Equal(t, want, out, "follow-up result must be returned unchanged")
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	e := errors.New("boom")
	calls := 0

	out := Then(FailOf[int](e), func(v int) Of[string] {
		calls++
		return OkOf(strconv.Itoa(v))
	})

	assert.Equal(t, 0, calls)
	require.True(t, out.Failed())
	assert.ErrorIs(t, out.Err(), e)
	assert.Equal(t, "", out.Value())
}

func TestThen_FollowUpFailure(t *testing.T) {
	t.Parallel()

	out := Then(OkOf(1), func(int) Of[int] { return FailMsgOf[int]("E2") })
	require.True(t, out.Failed())
	assert.Equal(t, "E2", out.FirstError().Message())
}

func TestThen_LongChainStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	steps := 0
	inc := func(v int) Of[int] { steps++; return OkOf(v + 1) }

	out := Then(Then(Then(OkOf(0), inc), func(int) Of[int] {
		steps++
		return FailMsgOf[int]("stop")
	}), inc)

	assert.Equal(t, 2, steps)
	assert.Equal(t, "stop", out.FirstError().Message())
}

func TestThenDo(t *testing.T) {
	t.Parallel()

	seen := ""
	ok := ThenDo(OkOf("x"), func(v string) Result { seen = v; return Ok() })
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "x", seen)

	called := false
	failed := ThenDo(FailMsgOf[string]("E"), func(string) Result { called = true; return Ok() })
	assert.False(t, called)
	assert.Equal(t, "E", failed.FirstError().Message())
}

func TestMap(t *testing.T) {
	t.Parallel()

	out := Map(OkOf(4).Log("start"), func(v int) string { return strconv.Itoa(v * 2) })
	assert.Equal(t, "8", out.Value())
	assert.Len(t, out.Logs(), 1)

	failed := Map(FailMsgOf[int]("oops"), func(v int) int { return v + 100 })
	assert.True(t, failed.Failed())
	assert.Equal(t, "oops", failed.FirstError().Message())

	requireInvariant(t, ErrNestedResult, func() {
		Map(OkOf(1), func(int) Result { return Ok() })
	})
}

func TestTee(t *testing.T) {
	t.Parallel()

	called := 0
	r := Tee(OkOf(2), func(int) { called++ })
	assert.Equal(t, 2, r.Value())
	assert.Equal(t, 1, called)

	Tee(FailMsgOf[int]("x"), func(int) { called++ })
	assert.Equal(t, 1, called)
}

func TestFinally(t *testing.T) {
	t.Parallel()

	onSuccess := func(v int) string { return "v" + strconv.Itoa(v) }
	onFailure := func(errs []Error) string { return "errs:" + strconv.Itoa(len(errs)) }

	assert.Equal(t, "v3", Finally(OkOf(3), onSuccess, onFailure))
	assert.Equal(t, "errs:2", Finally(FailMsgOf[int]("a", "b"), onSuccess, onFailure))
}
