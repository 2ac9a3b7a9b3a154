package argue

import "errors"

// Map transforms the successful value to a new value, propagating failure.
func Map[In, Out any](input Result[In], onSuccess func(In) Out) Result[Out] {
	if input.IsSuccess() {
		return Success(onSuccess(input.value))
	}
	return Failure[Out](input.err)
}

// Then composes functions that already return a Result, switching the
// value type on success.
func Then[In, Out any](input Result[In], onSuccess func(In) Result[Out]) Result[Out] {
	if input.IsSuccess() {
		return onSuccess(input.value)
	}
	return Failure[Out](input.err)
}

// Validate applies a validation producing failure on invalid input.
func Validate[T any](input T, validate func(in T) (valid bool, errMsg string)) Result[T] {
	if valid, errMsg := validate(input); !valid {
		return Failure[T](NewError(errMsg))
	}
	return Success(input)
}

// Combine runs every check against the value and joins all failures into
// a single error. The input short-circuits if it is already a failure.
func Combine[T any](input Result[T], checks ...func(in T) Result[T]) Result[T] {
	if input.IsFailure() {
		return input
	}

	var errs []error
	for _, check := range checks {
		if r := check(input.value); r.IsFailure() {
			errs = append(errs, r.err)
		}
	}

	if len(errs) > 0 {
		return Failure[T](NewError(errors.Join(errs...).Error()))
	}
	return input
}

// Finally collapses the result to a concrete value via handlers.
func Finally[In, Out any](input Result[In], onSuccess func(In) Out, onFailure func(err error) Out) Out {
	if input.IsSuccess() {
		return onSuccess(input.value)
	}
	return onFailure(input.err)
}
