package also

import (
	"time"

	"github.com/google/uuid"
)

// Result is the success/failure container the and/or combinators operate on.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromPair converts Go's native (value, error) pair into a Result.
// Context cancellation and deadline errors become a cancel result.
func FromPair[T any](v T, err error) Result[T] {
	if IsNilError(err) {
		return Success(v)
	}
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

// PairFrom is FromPair for a step taken on from: the outcome keeps from's id
// and creation time. A failed pair carries no value.
func PairFrom[T any](from Result[T], v T, err error) Result[T] {
	if IsNilError(err) {
		return SuccessFrom(from, v)
	}
	return Result[T]{
		err:       err,
		isCancel:  IsCancellationError(err),
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// CancelFrom re-types a failed or cancelled result, keeping its identity.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom rebuilds from as a success carrying r. Id and creation time are kept.
func SuccessFrom[T any](from Result[T], r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		hasResult: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FailFrom rebuilds from with err as its failure payload. A cancel stays a
// cancel; id and creation time are kept.
func FailFrom[T any](from Result[T], err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// Unpack returns the result as Go's native (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	return r.result, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports a failed or cancelled result.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && (r.err != nil || r.isCancel)
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// State names the variant: "success", "failure", "cancel" or "empty".
func (r Result[T]) State() string {
	switch {
	case r.isSuccess:
		return "success"
	case r.isCancel:
		return "cancel"
	case r.err != nil:
		return "failure"
	default:
		return "empty"
	}
}
