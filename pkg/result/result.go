package result

import (
	"fmt"
	"hash/fnv"
	"iter"
	"reflect"
)

// Result holds either a Success value of type T or a Failure value of type E.
// Exactly one variant is active; the inactive payload field stays at its zero
// value, so two Results with comparable payloads can also be compared with ==.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// IsSuccessAnd reports whether r is a Success whose payload satisfies pred.
func (r Result[T, E]) IsSuccessAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsFailureAnd reports whether r is a Failure whose payload satisfies pred.
func (r Result[T, E]) IsFailureAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// SuccessOrNone returns the Success payload as an Option, discarding any
// Failure payload.
func (r Result[T, E]) SuccessOrNone() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// FailureOrNone returns the Failure payload as an Option, discarding any
// Success payload.
func (r Result[T, E]) FailureOrNone() Option[E] {
	if !r.ok {
		return Some(r.err)
	}
	return None[E]()
}

// Inspect calls f with the payload if r is a Success and returns r unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectError calls f with the payload if r is a Failure and returns r
// unchanged.
func (r Result[T, E]) InspectError(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// ToSeq returns a lazy sequence yielding the Success payload exactly once,
// or nothing for a Failure. The sequence is restartable: every range over it
// re-derives the same element from r.
func (r Result[T, E]) ToSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// Unwrap returns the Success payload. It panics with *UnwrapFailedError,
// carrying the Failure payload, if r is a Failure.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapFailedError{Msg: unwrapFailureMsg, Payload: r.err})
	}
	return r.value
}

// UnwrapError returns the Failure payload. It panics with
// *UnwrapErrorFailedError, carrying the Success payload, if r is a Success.
func (r Result[T, E]) UnwrapError() E {
	if r.ok {
		panic(&UnwrapErrorFailedError{Msg: unwrapSuccessMsg, Payload: r.value})
	}
	return r.err
}

// Expect is Unwrap with a caller-supplied diagnostic message.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(&UnwrapFailedError{Msg: msg, Payload: r.err})
	}
	return r.value
}

// ExpectFailure is UnwrapError with a caller-supplied diagnostic message.
func (r Result[T, E]) ExpectFailure(msg string) E {
	if r.ok {
		panic(&UnwrapErrorFailedError{Msg: msg, Payload: r.value})
	}
	return r.err
}

// UnwrapOr returns the Success payload, or def for a Failure. The default is
// evaluated by the caller regardless of variant.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the Success payload, or f applied to the Failure
// payload. f runs only for a Failure.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.ok {
		return r.value
	}
	return f(r.err)
}

// Equal reports whether r and other are the same variant with equal payloads.
// Payload equality is structural, so non-comparable payloads such as slices
// are supported; for comparable payloads it agrees with ==.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.err, other.err)
}

// Hash returns a 64-bit FNV-1a hash over the variant tag and the active
// payload, so Success(x) and Failure(x) hash differently even when their
// payloads are equal.
func (r Result[T, E]) Hash() uint64 {
	h := fnv.New64a()
	if r.ok {
		h.Write([]byte{1})
		fmt.Fprintf(h, "%v", r.value)
	} else {
		h.Write([]byte{0})
		fmt.Fprintf(h, "%v", r.err)
	}
	return h.Sum64()
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
