package opt

import "github.com/hxlib/argue/pkg/argue"

// RequireNonNull unwraps a present value and fails when it is absent.
func RequireNonNull[T any](name string, value argue.Option[T]) argue.Result[T] {
	v, ok := value.Get()
	if !ok {
		return argue.Failf[T]("Parameter '%s' cannot be null", name)
	}
	return argue.Success(v)
}

// RequireNonNullAnd unwraps a present value and applies the predicate to
// it. An absent value fails with the null message; a present value that
// fails the predicate fails with the caller's message.
func RequireNonNullAnd[T any](name string, value argue.Option[T],
	predicate func(in T) bool, errorMsg string) argue.Result[T] {

	v, ok := value.Get()
	if !ok {
		return argue.Failf[T]("Parameter '%s' cannot be null", name)
	}
	if !predicate(v) {
		return argue.Failf[T]("Parameter '%s' %s", name, errorMsg)
	}
	return argue.Success(v)
}

// ValidateIfPresent applies the validator to the contained value when
// present. The validator's success value is discarded and the original
// option returned unchanged; its failure propagates untouched. An absent
// value passes trivially.
func ValidateIfPresent[T any](name string, value argue.Option[T],
	validator func(in T) argue.Result[T]) argue.Result[argue.Option[T]] {

	v, ok := value.Get()
	if !ok {
		return argue.Success(argue.None[T]())
	}
	return argue.Then(validator(v), func(T) argue.Result[argue.Option[T]] {
		return argue.Success(value)
	})
}

// RequireNullOr passes an absent value trivially; a present value must
// satisfy the predicate or fail with the caller's message. On success
// the original option is returned.
func RequireNullOr[T any](name string, value argue.Option[T],
	predicate func(in T) bool, errorMsg string) argue.Result[argue.Option[T]] {

	v, ok := value.Get()
	if !ok {
		return argue.Success(argue.None[T]())
	}
	if !predicate(v) {
		return argue.Failf[argue.Option[T]]("Parameter '%s' %s", name, errorMsg)
	}
	return argue.Success(value)
}
