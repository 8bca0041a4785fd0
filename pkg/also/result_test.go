package also

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResult_States(t *testing.T) {
	t.Parallel()

	s := Success(1)
	assert.True(t, s.IsSuccess())
	assert.False(t, s.IsFailure())
	assert.True(t, s.HasResult())
	assert.Equal(t, "success", s.State())
	assert.NotEqual(t, uuid.Nil, s.Id())

	f := Fail[int](errors.New("f"))
	assert.True(t, f.IsFailure())
	assert.False(t, f.IsCancel())
	assert.Equal(t, "failure", f.State())

	c := Cancel[int](errors.New("c"))
	assert.True(t, c.IsFailure())
	assert.True(t, c.IsCancel())
	assert.Equal(t, "cancel", c.State())

	var e Result[int]
	assert.True(t, e.IsEmpty())
	assert.False(t, e.IsFailure())
	assert.Equal(t, "empty", e.State())
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	assert.True(t, FromPair(3, nil).IsSuccess())
	assert.Equal(t, 3, FromPair(3, nil).Result())

	f := FromPair(0, errors.New("bad"))
	assert.True(t, f.IsFailure())
	assert.False(t, f.IsCancel())

	c := FromPair(0, fmt.Errorf("wrapped: %w", context.Canceled))
	assert.True(t, c.IsCancel())
	assert.ErrorIs(t, c.Err(), context.Canceled)
}

func TestSuccessFrom_FailFrom_KeepIdentity(t *testing.T) {
	t.Parallel()

	s := Success("a")
	s2 := SuccessFrom(s, "b")
	assert.Equal(t, s.Id(), s2.Id())
	assert.Equal(t, s.CreatedAt(), s2.CreatedAt())
	assert.Equal(t, "b", s2.Result())

	c := Cancel[string](errors.New("x"))
	c2 := FailFrom(c, errors.New("y"))
	assert.Equal(t, c.Id(), c2.Id())
	assert.True(t, c2.IsCancel())
	assert.EqualError(t, c2.Err(), "y")
}

func TestCancelFrom(t *testing.T) {
	t.Parallel()

	in := Cancel[int](context.DeadlineExceeded)
	out := CancelFrom[int, string](in)
	assert.True(t, out.IsCancel())
	assert.Equal(t, in.Id(), out.Id())
	assert.True(t, IsCancellationError(out.Err()))
}

func TestUnpack(t *testing.T) {
	t.Parallel()

	v, err := Success(4).Unpack()
	assert.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = Fail[int](errors.New("no")).Unpack()
	assert.EqualError(t, err, "no")
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))
	assert.Len(t, GetErrors(errors.New("one")), 1)
	assert.Len(t, GetErrors(errors.Join(errors.New("a"), errors.New("b"))), 2)

	var nilPtr *customErr
	assert.True(t, IsNil(nilPtr))
}

type customErr struct{}

func (*customErr) Error() string { return "custom" }

func TestPairFrom(t *testing.T) {
	t.Parallel()

	base := Success("a")

	ok := PairFrom(base, "b", nil)
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "b", ok.Result())
	assert.Equal(t, base.Id(), ok.Id())

	failed := PairFrom(base, "ignored", errors.New("bad"))
	assert.True(t, failed.IsFailure())
	assert.False(t, failed.IsCancel())
	assert.False(t, failed.HasResult())
	assert.Empty(t, failed.Result())
	assert.Equal(t, base.Id(), failed.Id())
	assert.Equal(t, base.CreatedAt(), failed.CreatedAt())

	cancelled := PairFrom(base, "", context.Canceled)
	assert.True(t, cancelled.IsCancel())
	assert.Equal(t, base.Id(), cancelled.Id())
}

func TestIsNilError_TypedNil(t *testing.T) {
	t.Parallel()

	var typed *customErr
	var err error = typed
	assert.True(t, IsNilError(err))
	assert.True(t, FromPair(1, err).IsSuccess())
	assert.False(t, IsNilError(&customErr{}))
}
