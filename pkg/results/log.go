package results

import (
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
)

type LogKind int

const (
	KindInfo LogKind = iota
	KindWarning
	KindError
	KindException
)

func (k LogKind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	case KindException:
		return "exception"
	}
	return "unknown"
}

// LogEntry is a diagnostic note attached to a result. Entries never change
// whether a result succeeded.
type LogEntry struct {
	ID        uuid.UUID
	Kind      LogKind
	Message   string
	Timestamp time.Time
	Fault     error
}

func newEntry(kind LogKind, msg string, fault error) LogEntry {
	return LogEntry{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   msg,
		Timestamp: time.Now().UTC(),
		Fault:     fault,
	}
}

// Logger is the structured logging surface used by Emit. *slog.Logger
// satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

func (r Result) Logs() []LogEntry {
	return slices.Clone(r.logs)
}

func (r Result) Log(msg string) Result {
	return r.LogKind(KindInfo, msg)
}

func (r Result) LogKind(kind LogKind, msg string) Result {
	return r.withEntries(newEntry(kind, msg, nil))
}

// LogFault records err as an exception entry rendered with Trace.
func (r Result) LogFault(err error) Result {
	if err == nil {
		return r
	}
	return r.withEntries(newEntry(KindException, Trace(err), err))
}

func (r Result) LogIf(cond bool, msg string) Result {
	if !cond {
		return r
	}
	return r.Log(msg)
}

// WithLogs appends all entries of src after the existing ones.
func (r Result) WithLogs(src Outcome) Result {
	return r.withEntries(src.base().logs...)
}

func (r Result) withEntries(entries ...LogEntry) Result {
	if len(entries) == 0 {
		return r
	}
	out := r
	out.logs = slices.Concat(r.logs, entries)
	return out
}

// Emit writes the log entries to logger, or slog.Default() when logger is nil.
func (r Result) Emit(logger Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	for _, e := range r.logs {
		args := []any{"result_id", r.id.String(), "entry_id", e.ID.String(), "at", e.Timestamp}
		switch e.Kind {
		case KindWarning:
			logger.Warn(e.Message, args...)
		case KindError:
			logger.Error(e.Message, args...)
		case KindException:
			logger.Error(e.Message, append(args, "error", e.Fault)...)
		default:
			logger.Info(e.Message, args...)
		}
	}
}

func (r Of[T]) Log(msg string) Of[T] {
	r.Result = r.Result.Log(msg)
	return r
}

func (r Of[T]) LogKind(kind LogKind, msg string) Of[T] {
	r.Result = r.Result.LogKind(kind, msg)
	return r
}

func (r Of[T]) LogFault(err error) Of[T] {
	r.Result = r.Result.LogFault(err)
	return r
}

func (r Of[T]) LogIf(cond bool, msg string) Of[T] {
	r.Result = r.Result.LogIf(cond, msg)
	return r
}

func (r Of[T]) WithLogs(src Outcome) Of[T] {
	r.Result = r.Result.WithLogs(src)
	return r
}
