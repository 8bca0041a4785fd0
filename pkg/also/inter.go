package also

import (
	"time"

	"github.com/google/uuid"
)

// ResultProvider is anything holding a success payload.
type ResultProvider[T any] interface {
	Result() T
	CreatedAt() time.Time
}

// WithError adds the failure side: Err is meaningful when IsSuccess is false.
type WithError[T any] interface {
	ResultProvider[T]
	Err() error
	IsSuccess() bool
}

// WithCancel tells a cancelled failure from a plain one. solo.Finally
// dispatches on it.
type WithCancel[T any] interface {
	WithError[T]
	IsCancel() bool
}

// Traceable is what chain.Trace needs to describe a container.
type Traceable interface {
	Id() uuid.UUID
	State() string
	CreatedAt() time.Time
	Err() error
	IsFailure() bool
}
