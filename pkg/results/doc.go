// Package results provides Result and Of[T], explicit success/failure values
// for error propagation without panics as control flow.
//
// Highlights:
// - Ok/Fail/FailMsg, OkOf/FailOf/NotNull: construct results
// - Then/ThenDo/Map/Tee/Finally: continue only on success, carry failures on
// - Handover/Collect: bundle values and results into a Collection
// - ThenArgs/Then0..Then4: unwrap a Collection into a multi-argument call
// - Log/LogIf/WithLogs/Emit: attach diagnostic entries
//
// A value held by Of[T] is never itself a result; attempts to store one panic
// with ErrNestedResult. Operational failures always travel as results, misuse
// of the API panics with an *InvariantError.
//
// Related packages: try converts panics and errors into failed results,
// batch runs fail-fast and fail-safe sequences, interlock guards a call with
// a lock, chain offers a fluent context-carrying wrapper and codec loads and
// saves JSON and YAML as results.
package results
