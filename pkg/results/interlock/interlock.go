// Package interlock runs result-returning functions while holding a
// caller-owned lock.
//
// By default the call blocks until the lock is acquired. With NoWait it fails
// immediately with results.ErrInterlock when the lock is busy, without running
// the function. The lock is released on every exit path, panics included.
// Try and TryOf additionally capture faults like the try package does.
package interlock

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/results/pkg/results"
	"github.com/ib-77/results/pkg/results/try"
	"golang.org/x/sync/semaphore"
)

// Locker is a mutual exclusion lock that can also be tried without
// blocking. *sync.Mutex and *sync.RWMutex satisfy it.
type Locker interface {
	sync.Locker
	TryLock() bool
}

// Do runs fn while holding lock.
func Do(lock Locker, fn func() results.Result, opts ...Option) results.Result {
	return run(lock, getOptions(opts), fn, failResult)
}

// DoOf runs fn while holding lock.
func DoOf[T any](lock Locker, fn func() results.Of[T], opts ...Option) results.Of[T] {
	return run(lock, getOptions(opts), fn, failOf[T])
}

// Try runs fn while holding lock and converts its faults into a failure.
func Try(lock Locker, fn func() results.Result, opts ...Option) results.Result {
	o := getOptions(opts)
	return run(lock, o, func() results.Result {
		return try.TryDo(fn, o.OnCatch...)
	}, failResult)
}

// TryOf runs fn while holding lock and converts its faults into a failure.
func TryOf[T any](lock Locker, fn func() results.Of[T], opts ...Option) results.Of[T] {
	o := getOptions(opts)
	return run(lock, o, func() results.Of[T] {
		return try.TryOf(fn, o.OnCatch...)
	}, failOf[T])
}

func failResult(err error) results.Result {
	return results.Fail(err)
}

func failOf[T any](err error) results.Of[T] {
	return results.FailOf[T](err)
}

func run[R any](lock Locker, o Options, fn func() R, failed func(error) R) R {
	if o.Wait {
		lock.Lock()
	} else if !lock.TryLock() {
		return failed(results.ErrInterlock)
	}
	defer lock.Unlock()

	return fn()
}

// ErrSemaphoreSize is returned by Semaphore for a size below one.
var ErrSemaphoreSize = errors.New("interlock: semaphore size must be at least 1")

// Weighted is a Locker over a weighted semaphore; every holder takes a
// weight of one, so a semaphore of size n admits n holders at once.
type Weighted struct {
	sem *semaphore.Weighted
}

// Semaphore builds a Weighted locker of size n.
func Semaphore(n int64) (Weighted, error) {
	if n < 1 {
		return Weighted{}, ErrSemaphoreSize
	}
	return Weighted{sem: semaphore.NewWeighted(n)}, nil
}

func (w Weighted) Lock() {
	// n >= 1, so a background Acquire only returns once the weight is held
	if err := w.sem.Acquire(context.Background(), 1); err != nil {
		panic(err)
	}
}

func (w Weighted) TryLock() bool {
	return w.sem.TryAcquire(1)
}

func (w Weighted) Unlock() {
	w.sem.Release(1)
}
