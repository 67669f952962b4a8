package chain

import (
	"github.com/devhammed/result-go/pkg/result"
)

type Chain[T, E any] struct {
	res result.Result[T, E]
}

func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return Start(result.Success[T, E](v))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes functions that already return a Result[T, E].
func (c Chain[T, E]) Then(onSuccess func(T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: result.AndThen(c.res, onSuccess)}
}

// Map transforms the successful value to a new value of the same type.
func (c Chain[T, E]) Map(onSuccess func(T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: result.Map(c.res, onSuccess)}
}

// While repeats onSuccess as long as the chain holds a success and the
// condition holds on the current value.
func (c Chain[T, E]) While(onSuccess func(T) result.Result[T, E],
	while func(T) bool) Chain[T, E] {

	for c.res.IsSuccessAnd(while) {
		c = c.Then(onSuccess)
	}
	return c
}

// Ensure triggers side effects for success/failure without changing the
// result.
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	if onSuccess != nil {
		c.res.Inspect(onSuccess)
	}
	if onFailure != nil {
		c.res.InspectError(onFailure)
	}
	return c
}

// Or keeps the current chain when it holds a success, otherwise switches to
// the alternative.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return alternative
}

// OrElse recovers from a failure by calling f with the failure payload.
func (c Chain[T, E]) OrElse(f func(E) result.Result[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{res: result.OrElse(c.res, f)}
}

// Finally collapses the chain to a final value, invoking exactly one of the
// two handlers.
func (c Chain[T, E]) Finally(onSuccess func(T) T, onFailure func(E) T) T {
	return result.MapOrElse(c.res, onFailure, onSuccess)
}
