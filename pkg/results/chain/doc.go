// Package chain provides a fluent wrapper around results.Of[T]
// for building synchronous chains that carry a context.
//
// Key operations:
// - Start/FromValue: begin a chain from a results.Of[T] or value
// - Then: switch to a new results.Of[U] via a function
// - ThenTry: call a function (U, error) and convert error or panic to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
