package fluent

import "github.com/hxlib/argue/pkg/argue"

type Chain[T any] struct {
	res argue.Result[T]
}

func Start[T any](r argue.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

func Of[T any](v T) Chain[T] {
	return Start(argue.Success(v))
}

func (c Chain[T]) Result() argue.Result[T] {
	return c.res
}

func (c Chain[T]) Get() (T, error) {
	return c.res.Get()
}

// Then composes functions that already return argue.Result[T]
func (c Chain[T]) Then(onSuccess func(t T) argue.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: onSuccess(c.res.Value())}
}

// Must fails the chain with the given message when the predicate does
// not hold for the current value.
func (c Chain[T]) Must(predicate func(t T) bool, errMsg string) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	if !predicate(c.res.Value()) {
		return Chain[T]{res: argue.Failure[T](argue.NewError(errMsg))}
	}
	return c
}

// ThenTry composes functions that return (T, error)
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	u, err := try(c.res.Value())
	if err != nil {
		return Chain[T]{res: argue.Failure[T](argue.NewError(err.Error()))}
	}
	return Chain[T]{res: argue.Success(u)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: argue.Success(onSuccess(c.res.Value()))}
}

// Finally collapses the chain to a final value, delegating to argue.Finally
func (c Chain[T]) Finally(onSuccess func(t T) T, onFailure func(err error) T) T {
	return argue.Finally(c.res, onSuccess, onFailure)
}
