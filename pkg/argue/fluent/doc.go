// Package fluent provides a minimal fluent Chain[T] for synchronous
// composition of validation results.
//
// It keeps the API surface very small:
// - Start/Of: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Must: fail on an unmet predicate
// - Map: transform the current value
// - Finally: reduce to a concrete value via handlers
//
// The chain short-circuits on the first failure, so later steps never
// see an invalid value.
package fluent
