// Package chain provides a fluent wrapper around Result[T, E] for building
// synchronous success/failure pipelines over a single value type.
//
// It composes the result package's combinators behind a convenient
// Chain[T, E] type. This enables ergonomic pipelines without dealing
// directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or a plain value
// - Then: continue with a function that returns a new Result[T, E]
// - Map: transform the successful value in place
// - While: repeat a step as long as a condition holds on the current value
// - Ensure: run side effects without changing the result
// - Or/OrElse: recover from a failure with an alternative
// - Finally: collapse the chain into a final value via handlers
//
// Chain is convenience sugar only; the semantics live in package result.
package chain
