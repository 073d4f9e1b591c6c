package interlock

import "github.com/ib-77/results/pkg/results/try"

type Options struct {
	Wait    bool
	OnCatch []try.Catch
}

type Option func(*Options)

// NoWait makes the call fail with results.ErrInterlock instead of blocking
// when the lock is held.
func NoWait() Option {
	return func(o *Options) {
		o.Wait = false
	}
}

// WithWait sets blocking acquisition explicitly.
func WithWait(wait bool) Option {
	return func(o *Options) {
		o.Wait = wait
	}
}

// WithCatch registers a callback for faults captured by Try and TryOf.
func WithCatch(c try.Catch) Option {
	return func(o *Options) {
		o.OnCatch = append(o.OnCatch, c)
	}
}

func getOptions(opts []Option) Options {
	o := Options{Wait: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
