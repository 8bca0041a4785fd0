// Package also defines Result[T], the success/failure container used by the
// chaining helpers in solo and chain, together with the small interfaces and
// error utilities shared by those packages.
//
// A Result is one of:
// - success: carries a value
// - failure: carries an error
// - cancel: carries an error caused by cancellation
// - empty: the zero Result
//
// Every constructed Result has an id and a UTC creation time. SuccessFrom
// and FailFrom rebuild a Result while keeping both, so a value mutated in
// place by AndRun or OrRun is still the same Result.
package also
