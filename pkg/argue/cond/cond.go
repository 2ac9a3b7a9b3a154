package cond

import "github.com/hxlib/argue/pkg/argue"

// CheckArgument checks an arbitrary boolean condition over input
// arguments, failing with a generic message when false.
func CheckArgument(condition bool) argue.Result[argue.Unit] {
	if !condition {
		return argue.Failf[argue.Unit]("Argument condition not satisfied")
	}
	return argue.OK()
}

// CheckArgumentMsg is CheckArgument with a caller-supplied message.
func CheckArgumentMsg(condition bool, message string) argue.Result[argue.Unit] {
	if !condition {
		return argue.Failure[argue.Unit](argue.NewError(message))
	}
	return argue.OK()
}

// CheckArgumentf is CheckArgument with a formatted message.
func CheckArgumentf(condition bool, format string, args ...any) argue.Result[argue.Unit] {
	if !condition {
		return argue.Failf[argue.Unit](format, args...)
	}
	return argue.OK()
}

// CheckState checks a state condition. Same behavior as CheckArgument;
// the distinct name signals invalid object or system state rather than
// invalid input.
func CheckState(condition bool) argue.Result[argue.Unit] {
	if !condition {
		return argue.Failf[argue.Unit]("State condition not satisfied")
	}
	return argue.OK()
}

// CheckStateMsg is CheckState with a caller-supplied message.
func CheckStateMsg(condition bool, message string) argue.Result[argue.Unit] {
	if !condition {
		return argue.Failure[argue.Unit](argue.NewError(message))
	}
	return argue.OK()
}

// CheckBounds validates that the sub-range [offset, offset+length) fits
// a buffer of size totalLength. The second comparison is written against
// totalLength-offset so the sum can never overflow.
func CheckBounds(offset, length, totalLength int) argue.Result[argue.Unit] {
	if offset < 0 {
		return argue.Failf[argue.Unit]("Offset %d cannot be negative", offset)
	}
	if length < 0 {
		return argue.Failf[argue.Unit]("Length %d cannot be negative", length)
	}
	if offset > totalLength {
		return argue.Failf[argue.Unit]("Offset %d exceeds total length %d", offset, totalLength)
	}
	if length > totalLength-offset {
		return argue.Failf[argue.Unit]("Length %d starting from offset %d exceeds total length %d",
			length, offset, totalLength)
	}
	return argue.OK()
}

// CheckElementIndex validates an index used to read an existing element;
// the valid range is [0, size).
func CheckElementIndex(index, size int) argue.Result[int] {
	if index < 0 || index >= size {
		return argue.Failf[int]("Index %d out of range [0, %d)", index, size)
	}
	return argue.Success(index)
}

// CheckPositionIndex validates an insertion position; the valid range is
// [0, size], allowing insertion at the end.
func CheckPositionIndex(index, size int) argue.Result[int] {
	if index < 0 || index > size {
		return argue.Failf[int]("Position index %d out of range [0, %d]", index, size)
	}
	return argue.Success(index)
}

// CheckPositionIndexes validates a position range [start, end] within a
// collection of the given size.
func CheckPositionIndexes(start, end, size int) argue.Result[argue.Unit] {
	if start < 0 {
		return argue.Failf[argue.Unit]("Start index %d cannot be negative", start)
	}
	if start > end {
		return argue.Failf[argue.Unit]("Start index %d is greater than end index %d", start, end)
	}
	if end > size {
		return argue.Failf[argue.Unit]("End index %d out of range [0, %d]", end, size)
	}
	return argue.OK()
}
