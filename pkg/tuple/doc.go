// Package tuple provides fixed-arity record containers: Pair[F, S] and
// Triple[F, S, T]. They behave like anonymous tuples but carry semantic
// field names and element-wise transformation helpers.
package tuple
