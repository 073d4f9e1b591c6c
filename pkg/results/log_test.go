package results

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_DoesNotChangeOutcome(t *testing.T) {
	t.Parallel()

	ok := Ok().Log("hello").LogKind(KindWarning, "careful")
	assert.True(t, ok.IsSuccess())
	require.Len(t, ok.Logs(), 2)
	assert.Equal(t, KindInfo, ok.Logs()[0].Kind)
	assert.Equal(t, KindWarning, ok.Logs()[1].Kind)
	assert.NotEqual(t, ok.Logs()[0].ID, ok.Logs()[1].ID)

	failed := FailMsgOf[int]("E").Log("still failed")
	assert.True(t, failed.Failed())
	assert.Len(t, failed.Logs(), 1)
}

func TestLog_AppendReturnsCopy(t *testing.T) {
	t.Parallel()

	base := Ok().Log("one")
	a := base.Log("a")
	b := base.Log("b")

	require.Len(t, base.Logs(), 1)
	require.Len(t, a.Logs(), 2)
	require.Len(t, b.Logs(), 2)
	assert.Equal(t, "a", a.Logs()[1].Message)
	assert.Equal(t, "b", b.Logs()[1].Message)
	assert.Equal(t, base.ID(), a.ID())
}

func TestLogIf(t *testing.T) {
	t.Parallel()

	r := OkOf(1).LogIf(false, "skipped").LogIf(true, "kept")
	require.Len(t, r.Logs(), 1)
	assert.Equal(t, "kept", r.Logs()[0].Message)
}

func TestLogFault(t *testing.T) {
	t.Parallel()

	e := errors.New("broken pipe")
	r := Ok().LogFault(e).LogFault(nil)

	require.Len(t, r.Logs(), 1)
	entry := r.Logs()[0]
	assert.Equal(t, KindException, entry.Kind)
	assert.Same(t, e, entry.Fault)
	assert.Contains(t, entry.Message, "broken pipe")
}

func TestWithLogs(t *testing.T) {
	t.Parallel()

	src := FailMsg("E").Log("from source")
	r := OkOf("v").Log("own").WithLogs(src)

	assert.True(t, r.IsSuccess())
	require.Len(t, r.Logs(), 2)
	assert.Equal(t, "own", r.Logs()[0].Message)
	assert.Equal(t, "from source", r.Logs()[1].Message)
}

func TestEmit(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := Ok().
		Log("first").
		LogKind(KindWarning, "second").
		LogKind(KindError, "third").
		LogFault(errors.New("fourth"))
	r.Emit(logger)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, out, "level=INFO msg=first")
	assert.Contains(t, out, "level=WARN msg=second")
	assert.Contains(t, out, "level=ERROR msg=third")
	assert.Contains(t, out, "error=fourth")
	assert.Contains(t, out, "result_id="+r.ID().String())
}

func TestLogKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", KindInfo.String())
	assert.Equal(t, "exception", KindException.String())
	assert.Equal(t, "unknown", LogKind(42).String())
}
