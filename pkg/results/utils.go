package results

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil or a nil pointer, map, slice, channel,
// function or interface held in an interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors splits an error produced by errors.Join back into its parts. It
// is the inverse of Result.Err for a failure with several errors: the parts
// come back in the order of Errors(). A nil error yields an empty slice and
// any other error a slice holding just that error.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellationError reports whether err is, or wraps, a context
// cancellation or deadline. Failures recorded by the batch Context variants
// and by try.Await on a done context satisfy it.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
