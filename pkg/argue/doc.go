// Package argue provides the core types for precondition validation:
// Result[T], ArgumentError and Option[T], plus combinators for composing
// validated values.
//
// Highlights:
// - Success/Failure/Failf: construct Result[T]
// - Map/Then: transform successful values or switch value type
// - Validate: apply a predicate producing failure on invalid input
// - Combine: run several checks and join all failures into one error
// - Finally: reduce to a concrete value via success/failure handlers
//
// The concrete checks live in the subpackages cond, num, str, coll and
// opt; fluent offers method chaining over Result[T]. Every check either
// returns the validated value or an ArgumentError describing the failed
// precondition. Nothing here panics, blocks or touches shared state.
package argue
