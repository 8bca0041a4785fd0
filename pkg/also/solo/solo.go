package solo

import "github.com/ib-77/also/pkg/also"

// Let calls f with v and returns its result.
func Let[V, R any](v V, f func(v V) R) R {
	return f(v)
}

// LetMut calls f with a pointer to the owned copy of v and returns its result.
func LetMut[V, R any](v V, f func(v *V) R) R {
	return f(&v)
}

// Also calls f with a pointer to v and returns v, including whatever f changed.
func Also[V any](v V, f func(v *V)) V {
	f(&v)
	return v
}

// TakeIf returns v when f succeeds and discards f's value. On failure the
// zero V and f's error, untouched, are returned. A typed nil error counts as
// success, as it does everywhere else in the module.
func TakeIf[V, R any](v V, f func(v *V) (R, error)) (V, error) {
	if _, err := f(&v); !also.IsNilError(err) {
		var zero V
		return zero, err
	}
	return v, nil
}

func TakeIfErr[V any](v V, f func(v *V) error) (V, error) {
	if err := f(&v); !also.IsNilError(err) {
		var zero V
		return zero, err
	}
	return v, nil
}

// AndRun calls f against the payload of a successful result. Failed,
// cancelled and empty results are returned as is.
func AndRun[T any](input also.Result[T], f func(r *T)) also.Result[T] {
	if !input.IsSuccess() {
		return input
	}

	r := input.Result()
	f(&r)
	return also.SuccessFrom(input, r)
}

// OrRun calls f against the error of a failed or cancelled result. Successful
// and empty results are returned as is. A failure stays a failure: if f
// clears the error, the original one is kept.
func OrRun[T any](input also.Result[T], f func(err *error)) also.Result[T] {
	if !input.IsFailure() {
		return input
	}

	return also.FailFrom(input, runOnErr(input.Err(), f))
}

// AndRunPair is AndRun for a (value, error) pair.
func AndRunPair[T any](v T, err error, f func(r *T)) (T, error) {
	if !also.IsNilError(err) {
		return v, err
	}
	f(&v)
	return v, nil
}

// OrRunPair is OrRun for a (value, error) pair.
func OrRunPair[T any](v T, err error, f func(err *error)) (T, error) {
	if also.IsNilError(err) {
		return v, nil
	}
	return v, runOnErr(err, f)
}

// runOnErr lets f rewrite err; a cleared error falls back to err.
func runOnErr(err error, f func(err *error)) error {
	out := err
	f(&out)
	if also.IsNilError(out) {
		return err
	}
	return out
}

func Finally[In, Out any](input also.WithCancel[In],
	onSuccess func(r In) Out,
	onError func(err error) Out,
	onCancel func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	} else if input.IsCancel() {
		return onCancel(input.Err())
	} else {
		return onError(input.Err())
	}
}
