// Package chain provides a fluent wrapper around also.Result[T] for chaining
// helpers whose steps may fail.
//
// Key operations:
// - Start/FromValue/FromPair: begin a chain
// - AndRun/Also: mutate the successful value
// - OrRun: mutate the error of a failed chain
// - TakeIf/TakeIfTry: fail the chain when a check fails
// - Let: move the successful value to a new type
// - Trace: log the current state through slog
// - Finally: collapse the chain into a final value via handlers
package chain
