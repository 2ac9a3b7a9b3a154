package argue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success(42)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 42, r.Value())
	assert.NoError(t, r.Err())
}

func TestFailure(t *testing.T) {
	t.Parallel()
	r := Failure[int](NewError("bad value"))
	assert.True(t, r.IsFailure())
	assert.EqualError(t, r.Err(), "bad value")
	assert.Equal(t, 0, r.Value())
}

func TestFailure_NilErrorGetsPlaceholderMessage(t *testing.T) {
	t.Parallel()
	r := Failure[int](nil)
	assert.True(t, r.IsFailure())
	assert.EqualError(t, r.Err(), "argument validation failed")
}

func TestFailf(t *testing.T) {
	t.Parallel()
	r := Failf[string]("Parameter '%s' cannot be null", "user")
	assert.EqualError(t, r.Err(), "Parameter 'user' cannot be null")
}

func TestErr_NilOnSuccess(t *testing.T) {
	t.Parallel()
	// Err must return an untyped nil, not a nil *ArgumentError boxed in
	// the error interface.
	if err := Success("x").Err(); err != nil {
		t.Fatalf("expected nil error, got: %v", err)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	v, err := Success(7).Get()
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = Failf[int]("nope").Get()
	assert.EqualError(t, err, "nope")
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, Success(5).OrElse(9))
	assert.Equal(t, 9, Failf[int]("nope").OrElse(9))
}

func TestArgumentError_Message(t *testing.T) {
	t.Parallel()
	e := Errorf("value %d out of range", 12)
	assert.Equal(t, "value 12 out of range", e.Message())
	assert.Equal(t, e.Message(), e.Error())
}

func TestArgumentError_AsError(t *testing.T) {
	t.Parallel()
	var target *ArgumentError
	err := Failf[int]("boom").Err()
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "boom", target.Message())
}
