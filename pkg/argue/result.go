package argue

// Unit is the value type of checks that validate a relationship rather
// than produce a value, such as bounds checks.
type Unit struct{}

// Result holds either a validated value or the ArgumentError explaining
// why validation failed. The zero Result is a success carrying the zero
// value; checks construct results through Success, Failure or Failf.
type Result[T any] struct {
	value T
	err   *ArgumentError
}

func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Failure[T any](err *ArgumentError) Result[T] {
	if err == nil {
		err = NewError("")
	}
	return Result[T]{err: err}
}

func Failf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: Errorf(format, args...)}
}

// OK is the success result of a value-less check.
func OK() Result[Unit] {
	return Success(Unit{})
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Value returns the validated value, or the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Get unpacks the result into the usual Go (value, error) shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.Err()
}

func (r Result[T]) OrElse(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}
