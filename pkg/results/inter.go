package results

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is implemented by Result, Of[T] and Collection.
type Outcome interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Failed returns true if the operation failed
	Failed() bool
	// Errors returns the errors collected while failing, oldest first
	Errors() []Error
	// Logs returns the attached diagnostic entries
	Logs() []LogEntry
	// ID identifies the result instance
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time

	base() Result
	boxed() any
}

// ValueProvider is implemented by results that carry a typed value.
type ValueProvider[T any] interface {
	Outcome
	// Value returns the wrapped value, meaningful only on success
	Value() T
}

func isOutcome(v any) bool {
	_, ok := v.(Outcome)
	return ok
}

func mustNotNest(v any, where string) {
	if isOutcome(v) {
		panic(ErrNestedResult.with("%s got %T", where, v))
	}
}
