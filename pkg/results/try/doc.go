// Package try is the boundary where faults become failed results.
//
// A fault is a panic raised by the called function or, for the shapes that
// return an error, a non-nil error. Each fault is handed to the optional Catch
// callbacks and wrapped into a results.ExceptionError. Nothing but API misuse
// (results.InvariantError) escapes these helpers.
//
// Key operations:
// - Try/TryErr/TryDo: untyped forms
// - TryOf/TryValue: typed forms
// - TryAsync/TryAsyncErr with Await/AwaitResult: the same on a goroutine
// - LogCatch/Collect: ready-made Catch callbacks
package try
