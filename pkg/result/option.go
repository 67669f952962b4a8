package result

// Option holds a value of type T or nothing. It is the return type of the
// SuccessOrNone and FailureOrNone conversions.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Value returns the contained value and panics if the Option is None.
func (o Option[T]) Value() T {
	if !o.ok {
		panic("called Value on a None option")
	}
	return o.value
}

// ValueOr returns the contained value, or def if the Option is None.
func (o Option[T]) ValueOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}
