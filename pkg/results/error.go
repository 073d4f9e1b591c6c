package results

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Error describes why a Result failed.
type Error interface {
	error
	// Message returns the human-readable failure text
	Message() string
}

type plainError struct {
	msg   string
	cause error
}

// NewError creates a message-only Error.
func NewError(msg string) Error {
	return plainError{msg: msg}
}

// AsError adapts any Go error to an Error. Errors that already implement
// Error are returned unchanged, nil stays nil.
func AsError(err error) Error {
	if IsNil(err) {
		return nil
	}

	if e, ok := err.(Error); ok {
		return e
	}

	return plainError{msg: err.Error(), cause: err}
}

func (e plainError) Message() string { return e.msg }
func (e plainError) Error() string   { return e.msg }
func (e plainError) Unwrap() error   { return e.cause }

// ExceptionError carries a fault captured by one of the Try helpers.
type ExceptionError struct {
	fault error
	trace string
}

// NewExceptionError wraps fault and renders its trace once.
func NewExceptionError(fault error) *ExceptionError {
	return &ExceptionError{fault: fault, trace: Trace(fault)}
}

// Fault returns the captured error.
func (e *ExceptionError) Fault() error { return e.fault }

// Message returns the rendered trace of the fault and all of its causes.
func (e *ExceptionError) Message() string { return e.trace }

func (e *ExceptionError) Error() string {
	if e.fault == nil {
		return ""
	}
	return e.fault.Error()
}

func (e *ExceptionError) Unwrap() error { return e.fault }

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Trace renders err as type name, message and stack, followed by the same
// for every wrapped cause, one block per line group.
func Trace(err error) string {
	sb := &strings.Builder{}
	seenStack := false

	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(sb, "%T\n%s", cur, cur.Error())

		// pkg/errors repeats the same stack on every wrapping layer
		if st, ok := cur.(stackTracer); ok && !seenStack {
			fmt.Fprintf(sb, "%+v", st.StackTrace())
			seenStack = true
		}
	}

	return sb.String()
}

// InterlockError reports a lock that could not be acquired without waiting.
type InterlockError struct{}

// ErrInterlock is returned in every failed non-blocking lock attempt.
var ErrInterlock = InterlockError{}

func (InterlockError) Message() string { return "lock cannot be acquired" }
func (InterlockError) Error() string   { return "lock cannot be acquired" }

// InvariantError is the panic value for API misuse. It is never stored in a
// Result.
type InvariantError struct {
	kind   string
	detail string
}

var (
	// ErrNestedResult is raised when a Result would be stored as a value.
	ErrNestedResult = &InvariantError{kind: "value cannot be a Result"}
	// ErrArgumentType is raised when a Handover slot does not fit the
	// parameter of the follow-up function.
	ErrArgumentType = &InvariantError{kind: "handover argument has wrong type"}
)

func (e *InvariantError) Error() string {
	if e.detail == "" {
		return e.kind
	}
	return e.kind + ": " + e.detail
}

// Is matches invariant errors by kind so detailed panics still satisfy
// errors.Is(err, ErrNestedResult).
func (e *InvariantError) Is(target error) bool {
	t, ok := target.(*InvariantError)
	return ok && t.kind == e.kind
}

func (e *InvariantError) with(format string, args ...any) *InvariantError {
	return &InvariantError{kind: e.kind, detail: fmt.Sprintf(format, args...)}
}

func toErrors(errs []error) []Error {
	out := make([]Error, 0, len(errs))
	for _, err := range errs {
		if e := AsError(err); e != nil {
			out = append(out, e)
		}
	}
	return out
}

func messagesToErrors(msgs []string) []Error {
	out := make([]Error, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, NewError(m))
	}
	return out
}
