package result

// Map applies f to the Success payload; a Failure passes through with its
// payload untouched.
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Success[U, E](f(r.value))
	}
	return Failure[U](r.err)
}

// MapError applies f to the Failure payload; a Success passes through with
// its payload untouched.
func MapError[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Success[T, F](r.value)
	}
	return Failure[T](f(r.err))
}

// MapOr returns f applied to the Success payload, or def for a Failure.
// def is evaluated by the caller regardless of variant.
func MapOr[T, E, U any](r Result[T, E], def U, f func(T) U) U {
	if r.ok {
		return f(r.value)
	}
	return def
}

// MapOrElse reduces r to a value by calling exactly one of the two handlers,
// chosen by variant.
func MapOrElse[T, E, U any](r Result[T, E], onError func(E) U, onSuccess func(T) U) U {
	if r.ok {
		return onSuccess(r.value)
	}
	return onError(r.err)
}

// And returns other if r is a Success, else propagates r's Failure payload.
// other is an already-constructed Result; use AndThen for a lazy step.
func And[T, E, U any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.ok {
		return other
	}
	return Failure[U](r.err)
}

// AndThen calls f with the Success payload and returns its result; a Failure
// propagates without invoking f. This is the monadic bind.
func AndThen[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Failure[U](r.err)
}

// Or returns r's Success unchanged, else other. other is an
// already-constructed Result; use OrElse for a lazy alternative.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.ok {
		return Success[T, F](r.value)
	}
	return other
}

// OrElse calls f with the Failure payload and returns its result; a Success
// propagates without invoking f.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Success[T, F](r.value)
	}
	return f(r.err)
}

// Flatten collapses one level of nesting: Success(Success(v)) becomes
// Success(v), Success(Failure(e)) and Failure(e) both become Failure(e).
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	return AndThen(r, func(inner Result[T, E]) Result[T, E] { return inner })
}
