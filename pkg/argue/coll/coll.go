package coll

import "github.com/hxlib/argue/pkg/argue"

func RequireNonEmpty[T any](name string, collection []T) argue.Result[[]T] {
	if len(collection) == 0 {
		return argue.Failf[[]T]("Collection '%s' cannot be empty", name)
	}
	return argue.Success(collection)
}

func RequireLengthBe[T any](name string, collection []T, length int) argue.Result[[]T] {
	if actual := len(collection); actual != length {
		return argue.Failf[[]T]("Collection '%s' length must be %d but was %d", name, length, actual)
	}
	return argue.Success(collection)
}

func RequireLengthAtLeast[T any](name string, collection []T, minLength int) argue.Result[[]T] {
	if actual := len(collection); actual < minLength {
		return argue.Failf[[]T]("Collection '%s' length must be at least %d but was %d", name, minLength, actual)
	}
	return argue.Success(collection)
}

func RequireLengthAtMost[T any](name string, collection []T, maxLength int) argue.Result[[]T] {
	if actual := len(collection); actual > maxLength {
		return argue.Failf[[]T]("Collection '%s' length must be at most %d but was %d", name, maxLength, actual)
	}
	return argue.Success(collection)
}

func RequireLengthInRange[T any](name string, collection []T, minLength, maxLength int) argue.Result[[]T] {
	if actual := len(collection); actual < minLength || actual > maxLength {
		return argue.Failf[[]T]("Collection '%s' length must be in range [%d, %d] but was %d",
			name, minLength, maxLength, actual)
	}
	return argue.Success(collection)
}

// RequireElementNonNull fails on the first absent element, naming its
// zero-based index. An empty collection passes vacuously.
func RequireElementNonNull[T any](name string, collection []argue.Option[T]) argue.Result[argue.Unit] {
	for index, item := range collection {
		if item.IsNone() {
			return argue.Failf[argue.Unit]("Collection '%s': element at index %d cannot be null", name, index)
		}
	}
	return argue.OK()
}
