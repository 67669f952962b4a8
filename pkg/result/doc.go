// Package result provides Result[T, E], a closed two-variant union holding
// either a Success value of type T or a Failure value of type E, together
// with combinators for transforming, inspecting and safely extracting the
// payload without branching on (value, error) pairs at every call site.
//
// Highlights:
// - Success/Failure: construct a Result[T, E]
// - IsSuccess/IsFailure/IsSuccessAnd/IsFailureAnd: predicates
// - SuccessOrNone/FailureOrNone: convert to Option, discarding the other side
// - Map/MapError/MapOr/MapOrElse: transform one side or reduce to a value
// - And/AndThen/Or/OrElse/Flatten: chain result-producing steps
// - Inspect/InspectError/ToSeq: side-effect taps and a lazy one-element view
// - Unwrap/Expect and friends: extraction, with typed panics on misuse
// - UnwrapOr/UnwrapOrElse/UnwrapOrDefault: extraction that never fails
//
// Type-changing combinators (Map, AndThen, ...) are package functions rather
// than methods because Go methods cannot introduce new type parameters.
//
// A Result is immutable after construction and safe to share between
// goroutines without synchronization, provided T and E are themselves safe
// to share.
package result
