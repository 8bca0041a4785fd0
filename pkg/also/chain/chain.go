package chain

import (
	"log/slog"
	"time"

	"github.com/ib-77/also/pkg/also"
	"github.com/ib-77/also/pkg/also/solo"
)

// Chain wraps an also.Result to enable fluent chaining
type Chain[T any] struct {
	result also.Result[T]
}

// Start creates a new chain from an also.Result
func Start[T any](result also.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: also.Success(value)}
}

// FromPair creates a new chain from a (value, error) pair
func FromPair[T any](value T, err error) *Chain[T] {
	return &Chain[T]{result: also.FromPair(value, err)}
}

// Result returns the underlying also.Result
func (c *Chain[T]) Result() also.Result[T] {
	return c.result
}

func (c *Chain[T]) Unpack() (T, error) {
	return c.result.Unpack()
}

// AndRun mutates the successful value in place
func (c *Chain[T]) AndRun(onSuccess func(r *T)) *Chain[T] {
	return &Chain[T]{result: solo.AndRun(c.result, onSuccess)}
}

// Also is AndRun under its more familiar name
func (c *Chain[T]) Also(onSuccess func(r *T)) *Chain[T] {
	return c.AndRun(onSuccess)
}

// OrRun mutates the error of a failed or cancelled chain
func (c *Chain[T]) OrRun(onFailure func(err *error)) *Chain[T] {
	return &Chain[T]{result: solo.OrRun(c.result, onFailure)}
}

// TakeIf keeps the value if check passes, otherwise the chain fails with check's error
func (c *Chain[T]) TakeIf(check func(r *T) error) *Chain[T] {
	return TakeIfTry(c, func(r *T) (struct{}, error) {
		return struct{}{}, check(r)
	})
}

// Trace writes the chain's current state to logger without changing it
func (c *Chain[T]) Trace(logger *slog.Logger, msg string) *Chain[T] {
	if logger == nil {
		logger = slog.Default()
	}

	attrs := traceAttrs(c.result)
	switch {
	case c.result.IsFailure():
		logger.Warn(msg, attrs...)
	case c.result.IsSuccess():
		logger.Debug(msg, append(attrs, slog.Any("value", c.result.Result()))...)
	default:
		logger.Debug(msg, attrs...)
	}
	return c
}

func traceAttrs(r also.Traceable) []any {
	attrs := []any{
		slog.String("id", r.Id().String()),
		slog.String("state", r.State()),
		slog.String("created_at", r.CreatedAt().Format(time.RFC3339Nano)),
	}
	if r.IsFailure() {
		attrs = append(attrs,
			slog.Any("error", r.Err()),
			slog.Int("errors", len(also.GetErrors(r.Err()))))
	}
	return attrs
}

// TakeIfTry keeps the value if tryOnSuccess returns no error, discarding its result
func TakeIfTry[T, R any](c *Chain[T], tryOnSuccess func(r *T) (R, error)) *Chain[T] {
	if !c.result.IsSuccess() {
		return c
	}

	v, err := solo.TakeIf(c.result.Result(), tryOnSuccess)
	return &Chain[T]{result: also.PairFrom(c.result, v, err)}
}

// Let chains a transformation function, failures are carried over
func Let[T, U any](c *Chain[T], onSuccess func(r T) U) *Chain[U] {
	if !c.result.IsSuccess() {
		return &Chain[U]{result: also.CancelFrom[T, U](c.result)}
	}
	return &Chain[U]{result: also.Success(solo.Let(c.result.Result(), onSuccess))}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U, onCancel func(error) U) U {
	return solo.Finally[T, U](c.result, onSuccess, onFailure, onCancel)
}
