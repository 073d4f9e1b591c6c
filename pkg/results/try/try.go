package try

import (
	"errors"
	"fmt"

	"github.com/ib-77/results/pkg/results"
	pkgerrors "github.com/pkg/errors"
)

// Catch observes a captured fault before it is turned into a failed result.
type Catch func(fault error)

// Try runs action and returns Ok, or a failure wrapping the panic it raised.
func Try(action func(), onCatch ...Catch) results.Result {
	return run(func() results.Result {
		action()
		return results.Ok()
	}, failResult, onCatch)
}

// TryErr runs action; a returned error or a panic becomes the failure.
func TryErr(action func() error, onCatch ...Catch) results.Result {
	return run(func() results.Result {
		if err := action(); err != nil {
			return fault(err, onCatch)
		}
		return results.Ok()
	}, failResult, onCatch)
}

// TryDo returns the result of fn, or a failure if fn panicked.
func TryDo(fn func() results.Result, onCatch ...Catch) results.Result {
	return run(fn, failResult, onCatch)
}

// TryOf returns the result of fn, or a failure if fn panicked.
func TryOf[T any](fn func() results.Of[T], onCatch ...Catch) results.Of[T] {
	return run(fn, failOf[T], onCatch)
}

// TryValue lifts a (value, error) call into Of[T]. A returned error and a
// panic are both captured.
func TryValue[T any](fn func() (T, error), onCatch ...Catch) results.Of[T] {
	return run(func() results.Of[T] {
		v, err := fn()
		if err != nil {
			return results.FailOf[T](captured(err, onCatch))
		}
		return results.OkOf(v)
	}, failOf[T], onCatch)
}

func failResult(e *results.ExceptionError) results.Result {
	return results.Fail(e)
}

func failOf[T any](e *results.ExceptionError) results.Of[T] {
	return results.FailOf[T](e)
}

func fault(err error, onCatch []Catch) results.Result {
	return results.Fail(captured(err, onCatch))
}

func captured(err error, onCatch []Catch) *results.ExceptionError {
	notify(onCatch, err)
	return results.NewExceptionError(err)
}

func notify(onCatch []Catch, err error) {
	for _, c := range onCatch {
		if c != nil {
			c(err)
		}
	}
}

// run calls fn and converts a panic into failed(...). Invariant violations are
// API misuse and keep panicking.
func run[R any](fn func() R, failed func(*results.ExceptionError) R, onCatch []Catch) (out R) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}

		var inv *results.InvariantError
		if err, ok := p.(error); ok && errors.As(err, &inv) {
			panic(p)
		}

		cause, traced := fromPanic(p)
		notify(onCatch, cause)
		out = failed(results.NewExceptionError(traced))
	}()

	return fn()
}

// fromPanic returns the panic value as an error and the same error with the
// stack of the panicking goroutine attached. A value that is not an error
// keeps its printed form as the message.
func fromPanic(p any) (error, error) {
	if err, ok := p.(error); ok {
		return err, pkgerrors.WithStack(err)
	}

	err := pkgerrors.New(fmt.Sprint(p))
	return err, err
}
