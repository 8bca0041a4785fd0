// Package solo contains the chaining helpers as free generic functions. Go
// has no way to attach a method to every type, so the receiver is the first
// argument.
//
// Highlights:
// - Let/LetMut: call a function with the value and return its result
// - Also: run a mutation step and keep the value
// - TakeIf/TakeIfErr: keep the value only if a fallible check passes
// - AndRun/OrRun: run a mutation against the success or failure side of a Result
// - AndRunPair/OrRunPair: the same for a (value, error) pair
// - Finally: reduce a Result to a concrete value via handlers
//
// Every helper calls its function at most once, synchronously, and never
// creates errors of its own.
package solo
