package num

import "github.com/hxlib/argue/pkg/argue"

// Real covers every built-in numeric type ordered by <. The zero value
// of T is the reference point for the sign checks.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Every check fails on the exact negation of its requirement. For
// floating-point values this means NaN, which compares false against
// any bound in either direction, never triggers a failure condition and
// therefore passes range and comparison checks. That is native IEEE-754
// comparison behavior, kept as is.

func RequireZero[T Real](name string, value T) argue.Result[T] {
	var zero T
	if value != zero {
		return argue.Failf[T]("Parameter '%s' must be zero but was: %v", name, value)
	}
	return argue.Success(value)
}

func RequireNonZero[T Real](name string, value T) argue.Result[T] {
	var zero T
	if value == zero {
		return argue.Failf[T]("Parameter '%s' cannot be zero", name)
	}
	return argue.Success(value)
}

func RequirePositive[T Real](name string, value T) argue.Result[T] {
	var zero T
	if value <= zero {
		return argue.Failf[T]("Parameter '%s' must be positive but was: %v", name, value)
	}
	return argue.Success(value)
}

func RequireNonNegative[T Real](name string, value T) argue.Result[T] {
	var zero T
	if value < zero {
		return argue.Failf[T]("Parameter '%s' must be non-negative but was: %v", name, value)
	}
	return argue.Success(value)
}

func RequireNegative[T Real](name string, value T) argue.Result[T] {
	var zero T
	if value >= zero {
		return argue.Failf[T]("Parameter '%s' must be negative but was: %v", name, value)
	}
	return argue.Success(value)
}

func RequireNonPositive[T Real](name string, value T) argue.Result[T] {
	var zero T
	if value > zero {
		return argue.Failf[T]("Parameter '%s' must be non-positive but was: %v", name, value)
	}
	return argue.Success(value)
}

// RequireInClosedRange validates value against [min, max]. Inverted
// bounds (min > max) describe an empty range, so every value fails; the
// same holds for the other three range checks.
func RequireInClosedRange[T Real](name string, value, min, max T) argue.Result[T] {
	if value < min || value > max {
		return argue.Failf[T]("Parameter '%s' must be in range [%v, %v] but was: %v", name, min, max, value)
	}
	return argue.Success(value)
}

// RequireInOpenRange validates value against (min, max).
func RequireInOpenRange[T Real](name string, value, min, max T) argue.Result[T] {
	if value <= min || value >= max {
		return argue.Failf[T]("Parameter '%s' must be in range (%v, %v) but was: %v", name, min, max, value)
	}
	return argue.Success(value)
}

// RequireInLeftOpenRange validates value against (min, max].
func RequireInLeftOpenRange[T Real](name string, value, min, max T) argue.Result[T] {
	if value <= min || value > max {
		return argue.Failf[T]("Parameter '%s' must be in range (%v, %v] but was: %v", name, min, max, value)
	}
	return argue.Success(value)
}

// RequireInRightOpenRange validates value against [min, max).
func RequireInRightOpenRange[T Real](name string, value, min, max T) argue.Result[T] {
	if value < min || value >= max {
		return argue.Failf[T]("Parameter '%s' must be in range [%v, %v) but was: %v", name, min, max, value)
	}
	return argue.Success(value)
}

func RequireLess[T Real](name string, value, max T) argue.Result[T] {
	if value >= max {
		return argue.Failf[T]("Parameter '%s' must be less than %v but was: %v", name, max, value)
	}
	return argue.Success(value)
}

func RequireLessEqual[T Real](name string, value, max T) argue.Result[T] {
	if value > max {
		return argue.Failf[T]("Parameter '%s' must be less than or equal to %v but was: %v", name, max, value)
	}
	return argue.Success(value)
}

func RequireGreater[T Real](name string, value, min T) argue.Result[T] {
	if value <= min {
		return argue.Failf[T]("Parameter '%s' must be greater than %v but was: %v", name, min, value)
	}
	return argue.Success(value)
}

func RequireGreaterEqual[T Real](name string, value, min T) argue.Result[T] {
	if value < min {
		return argue.Failf[T]("Parameter '%s' must be greater than or equal to %v but was: %v", name, min, value)
	}
	return argue.Success(value)
}

// RequireEqual validates that two named parameters hold the same value.
func RequireEqual[T comparable](name1 string, value1 T, name2 string, value2 T) argue.Result[argue.Unit] {
	if value1 != value2 {
		return argue.Failf[argue.Unit]("Parameter '%s' (%v) must equal parameter '%s' (%v)",
			name1, value1, name2, value2)
	}
	return argue.OK()
}

// RequireNotEqual validates that two named parameters hold different values.
func RequireNotEqual[T comparable](name1 string, value1 T, name2 string, value2 T) argue.Result[argue.Unit] {
	if value1 == value2 {
		return argue.Failf[argue.Unit]("Parameters '%s' and '%s' cannot be equal (both are: %v)",
			name1, name2, value1)
	}
	return argue.OK()
}
