package results

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Result is the untyped outcome of an operation: success, or failure with
// zero or more errors. Results are created by the factory functions only and
// are never modified afterwards; the log methods return extended copies.
type Result struct {
	id        uuid.UUID
	createdAt time.Time
	success   bool
	errs      []Error
	logs      []LogEntry
}

func newResult(success bool, errs []Error) Result {
	return Result{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		success:   success,
		errs:      errs,
	}
}

// Ok creates a successful result.
func Ok() Result {
	return newResult(true, nil)
}

// Fail creates a failed result. Each non-nil err is attached in order.
func Fail(errs ...error) Result {
	return newResult(false, toErrors(errs))
}

// FailMsg creates a failed result with one plain error per message.
func FailMsg(msgs ...string) Result {
	return newResult(false, messagesToErrors(msgs))
}

func (r Result) IsSuccess() bool {
	return r.success
}

func (r Result) Failed() bool {
	return !r.success
}

func (r Result) Errors() []Error {
	return slices.Clone(r.errs)
}

// FirstError returns the earliest attached error or nil.
func (r Result) FirstError() Error {
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs[0]
}

// Err returns nil on success or when no error was attached, the error itself
// when there is one and errors.Join of all of them otherwise.
func (r Result) Err() error {
	switch len(r.errs) {
	case 0:
		return nil
	case 1:
		return r.errs[0]
	}

	errs := make([]error, 0, len(r.errs))
	for _, e := range r.errs {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

func (r Result) ID() uuid.UUID {
	return r.id
}

func (r Result) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result) String() string {
	if r.success {
		return "success"
	}
	if len(r.errs) == 0 {
		return "failure"
	}

	msgs := make([]string, 0, len(r.errs))
	for _, e := range r.errs {
		msgs = append(msgs, e.Error())
	}
	return "failure: " + strings.Join(msgs, "; ")
}

func (r Result) base() Result { return r }
func (r Result) boxed() any   { return nil }

// Of is a Result carrying a value of type T. T must never be a Result type.
type Of[T any] struct {
	Result
	value T
}

// OkOf creates a successful result holding v.
// It panics with ErrNestedResult when v is itself a Result.
func OkOf[T any](v T) Of[T] {
	mustNotNest(v, "OkOf")
	return Of[T]{Result: newResult(true, nil), value: v}
}

// FailOf creates a failed typed result.
func FailOf[T any](errs ...error) Of[T] {
	return Of[T]{Result: newResult(false, toErrors(errs))}
}

// FailMsgOf creates a failed typed result with one plain error per message.
func FailMsgOf[T any](msgs ...string) Of[T] {
	return Of[T]{Result: newResult(false, messagesToErrors(msgs))}
}

// NotNull succeeds iff v is not nil; otherwise it fails with msgs.
func NotNull[T any](v T, msgs ...string) Of[T] {
	return notNull(v, messagesToErrors(msgs))
}

// NotNullErr succeeds iff v is not nil; otherwise it fails with errs.
func NotNullErr[T any](v T, errs ...error) Of[T] {
	return notNull(v, toErrors(errs))
}

func notNull[T any](v T, errs []Error) Of[T] {
	mustNotNest(v, "NotNull")
	if IsNil(v) {
		return Of[T]{Result: newResult(false, errs), value: v}
	}
	return Of[T]{Result: newResult(true, nil), value: v}
}

// FailFrom turns from into a failed result of another value type, keeping
// its errors and logs untouched. It is how failures travel down a chain.
func FailFrom[T any](from Outcome) Of[T] {
	src := from.base()
	out := Of[T]{Result: newResult(false, src.errs)}
	out.logs = src.logs
	return out
}

func (r Of[T]) Value() T {
	return r.value
}

func (r Of[T]) boxed() any { return r.value }

func (r Of[T]) String() string {
	if r.success {
		return fmt.Sprintf("success: %v", r.value)
	}
	return r.Result.String()
}

// WhenNull replaces a nil value with v on a successful result.
func (r Of[T]) WhenNull(v T) Of[T] {
	mustNotNest(v, "WhenNull")

	if r.Failed() || !IsNil(r.value) {
		return r
	}

	out := r
	out.value = v
	return out
}

// When replaces the value with fn(value) if eval(value) holds.
// Failed results are returned unchanged and neither function is called.
func (r Of[T]) When(eval func(T) bool, fn func(T) T) Of[T] {
	if r.Failed() || !eval(r.value) {
		return r
	}

	v := fn(r.value)
	mustNotNest(v, "When")

	out := r
	out.value = v
	return out
}

// Assert fails the result with msg unless pred holds for the value.
// An empty msg fails without attaching an error.
func (r Of[T]) Assert(pred func(T) bool, msg string) Of[T] {
	var errs []Error
	if msg != "" {
		errs = append(errs, NewError(msg))
	}
	return r.assert(pred, errs)
}

// AssertErr fails the result with err unless pred holds for the value.
func (r Of[T]) AssertErr(pred func(T) bool, err error) Of[T] {
	return r.assert(pred, toErrors([]error{err}))
}

func (r Of[T]) assert(pred func(T) bool, errs []Error) Of[T] {
	if r.Failed() || pred(r.value) {
		return r
	}

	out := r
	out.success = false
	out.errs = slices.Concat(r.errs, errs)
	return out
}
