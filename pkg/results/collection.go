package results

import (
	"slices"
)

type slotKind uint8

const (
	slotValue slotKind = iota
	slotResult
)

// slot is decided once, when the collection is built: either a plain value
// or a result to be unwrapped by the follow-up call.
type slot struct {
	kind   slotKind
	value  any
	result Outcome
}

// Collection is a result whose value is an ordered bundle of slots. It is
// used to hand several values (plain or results) to one follow-up call, and
// to record the results of a batch of operations.
type Collection struct {
	Result
	slots []slot
}

// Handover bundles values for a follow-up call. Values that are results are
// unwrapped when the follow-up runs; if any of them failed the follow-up is
// skipped. The collection itself is always successful.
func Handover(values ...any) Collection {
	return Collection{Result: Ok(), slots: toSlots(values)}
}

// Collect records finished results. The collection succeeds iff every member
// succeeded and carries the errors of all failed members in order.
func Collect[R Outcome](rs ...R) Collection {
	slots := make([]slot, 0, len(rs))
	success := true
	var errs []Error

	for _, r := range rs {
		slots = append(slots, slot{kind: slotResult, result: r})
		if r.Failed() {
			success = false
			errs = append(errs, r.Errors()...)
		}
	}

	return Collection{Result: newResult(success, errs), slots: slots}
}

func toSlots(values []any) []slot {
	slots := make([]slot, 0, len(values))
	for _, v := range values {
		if IsNil(v) {
			slots = append(slots, slot{kind: slotValue})
		} else if o, ok := v.(Outcome); ok {
			slots = append(slots, slot{kind: slotResult, result: o})
		} else {
			slots = append(slots, slot{kind: slotValue, value: v})
		}
	}
	return slots
}

func (c Collection) Len() int {
	return len(c.slots)
}

// Value returns the raw slots: plain values as given, results as results.
func (c Collection) Value() []any {
	values := make([]any, 0, len(c.slots))
	for _, s := range c.slots {
		if s.kind == slotResult {
			values = append(values, s.result)
		} else {
			values = append(values, s.value)
		}
	}
	return values
}

// Results returns the untyped view of every slot when all slots hold results.
func (c Collection) Results() ([]Result, bool) {
	rs := make([]Result, 0, len(c.slots))
	for _, s := range c.slots {
		if s.kind != slotResult {
			return nil, false
		}
		rs = append(rs, s.result.base())
	}
	return rs, true
}

// At returns the slot at i as a result, if it holds one.
func (c Collection) At(i int) (Outcome, bool) {
	if i < 0 || i >= len(c.slots) || c.slots[i].kind != slotResult {
		return nil, false
	}
	return c.slots[i].result, true
}

func (c Collection) boxed() any { return c.Value() }

func (c Collection) Log(msg string) Collection {
	c.Result = c.Result.Log(msg)
	return c
}

func (c Collection) LogKind(kind LogKind, msg string) Collection {
	c.Result = c.Result.LogKind(kind, msg)
	return c
}

func (c Collection) LogFault(err error) Collection {
	c.Result = c.Result.LogFault(err)
	return c
}

func (c Collection) LogIf(cond bool, msg string) Collection {
	c.Result = c.Result.LogIf(cond, msg)
	return c
}

func (c Collection) WithLogs(src Outcome) Collection {
	c.Result = c.Result.WithLogs(src)
	return c
}

// unwrap replaces result slots by their values and gathers the errors of
// failed ones, in slot order.
func (c Collection) unwrap() (Args, []Error, bool) {
	values := make([]any, 0, len(c.slots))
	var errs []Error
	failed := false

	for _, s := range c.slots {
		if s.kind == slotValue {
			values = append(values, s.value)
			continue
		}

		if s.result.Failed() {
			failed = true
			errs = append(errs, s.result.Errors()...)
		}
		values = append(values, s.result.boxed())
	}

	return Args{values: values}, errs, failed
}

// ThenArgs unwraps the collection and calls onSuccess with the values. If the
// collection or any result slot failed, onSuccess is not called and the
// returned failure carries the collection's errors followed by the errors of
// every failed slot.
func ThenArgs[Out any](c Collection, onSuccess func(args Args) Of[Out]) Of[Out] {
	if c.Failed() {
		return FailFrom[Out](c)
	}

	args, errs, failed := c.unwrap()
	if failed {
		out := Of[Out]{Result: newResult(false, slices.Concat(c.errs, errs))}
		out.logs = c.logs
		return out
	}

	res := onSuccess(args)
	mustNotNest(res.value, "ThenArgs")

	if res.Failed() && len(c.errs) > 0 {
		res.errs = slices.Concat(c.errs, res.errs)
	}
	return res
}

func Then0[Out any](c Collection, onSuccess func() Of[Out]) Of[Out] {
	return ThenArgs(c, func(a Args) Of[Out] {
		a.expect(0)
		return onSuccess()
	})
}

func Then1[A, Out any](c Collection, onSuccess func(a A) Of[Out]) Of[Out] {
	return ThenArgs(c, func(a Args) Of[Out] {
		a.expect(1)
		return onSuccess(Arg[A](a, 0))
	})
}

func Then2[A, B, Out any](c Collection, onSuccess func(a A, b B) Of[Out]) Of[Out] {
	return ThenArgs(c, func(a Args) Of[Out] {
		a.expect(2)
		return onSuccess(Arg[A](a, 0), Arg[B](a, 1))
	})
}

func Then3[A, B, C, Out any](c Collection, onSuccess func(a A, b B, c C) Of[Out]) Of[Out] {
	return ThenArgs(c, func(a Args) Of[Out] {
		a.expect(3)
		return onSuccess(Arg[A](a, 0), Arg[B](a, 1), Arg[C](a, 2))
	})
}

func Then4[A, B, C, D, Out any](c Collection, onSuccess func(a A, b B, c C, d D) Of[Out]) Of[Out] {
	return ThenArgs(c, func(a Args) Of[Out] {
		a.expect(4)
		return onSuccess(Arg[A](a, 0), Arg[B](a, 1), Arg[C](a, 2), Arg[D](a, 3))
	})
}

// Args are the unwrapped values of a collection.
type Args struct {
	values []any
}

func (a Args) Len() int {
	return len(a.values)
}

func (a Args) Slice() []any {
	return slices.Clone(a.values)
}

func (a Args) expect(n int) {
	if len(a.values) != n {
		panic(ErrArgumentType.with("follow-up takes %d arguments, handover has %d", n, len(a.values)))
	}
}

// Arg returns argument i as T. A nil argument yields the zero value of T.
// It panics with ErrArgumentType if i is out of range or the argument is not
// a T.
func Arg[T any](a Args, i int) T {
	var zero T
	if i < 0 || i >= len(a.values) {
		panic(ErrArgumentType.with("argument %d of %d", i, len(a.values)))
	}

	v := a.values[i]
	if v == nil {
		return zero
	}

	t, ok := v.(T)
	if !ok {
		panic(ErrArgumentType.with("argument %d is %T, want %T", i, v, zero))
	}
	return t
}
