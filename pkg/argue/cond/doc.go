// Package cond checks arbitrary boolean conditions and index/bounds
// relationships.
//
// Highlights:
// - CheckArgument/CheckState: generic condition checks (Msg/f variants)
// - CheckBounds: sub-range access into a buffer
// - CheckElementIndex: read index, valid in [0, size)
// - CheckPositionIndex: insertion index, valid in [0, size]
// - CheckPositionIndexes: position range start..end within size
package cond
