package str

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/hxlib/argue/pkg/argue"
)

// Length checks count encoded bytes, not code points: len("汉") is 3.
// Callers validating user-visible character counts need to convert to
// runes themselves.

// RequireNonBlank fails when the string is empty after trimming leading
// and trailing whitespace.
func RequireNonBlank(name, value string) argue.Result[string] {
	if strings.TrimSpace(value) == "" {
		return argue.Failf[string]("Parameter '%s' cannot be empty or contain only whitespace characters", name)
	}
	return argue.Success(value)
}

func RequireLengthBe(name, value string, length int) argue.Result[string] {
	if actual := len(value); actual != length {
		return argue.Failf[string]("Parameter '%s' length must be %d but was %d", name, length, actual)
	}
	return argue.Success(value)
}

func RequireLengthAtLeast(name, value string, minLength int) argue.Result[string] {
	if actual := len(value); actual < minLength {
		return argue.Failf[string]("Parameter '%s' length must be at least %d but was %d", name, minLength, actual)
	}
	return argue.Success(value)
}

func RequireLengthAtMost(name, value string, maxLength int) argue.Result[string] {
	if actual := len(value); actual > maxLength {
		return argue.Failf[string]("Parameter '%s' length must be at most %d but was %d", name, maxLength, actual)
	}
	return argue.Success(value)
}

func RequireLengthInRange(name, value string, minLength, maxLength int) argue.Result[string] {
	if actual := len(value); actual < minLength || actual > maxLength {
		return argue.Failf[string]("Parameter '%s' length must be in range [%d, %d] but was %d",
			name, minLength, maxLength, actual)
	}
	return argue.Success(value)
}

// RequireMatch fails when the string contains no match of the pattern.
// Matching is partial; anchor the pattern for a full-string match.
func RequireMatch(name, value string, pattern *regexp.Regexp) argue.Result[string] {
	if !pattern.MatchString(value) {
		return argue.Failf[string]("Parameter '%s' must match pattern '%s'", name, pattern.String())
	}
	return argue.Success(value)
}

// RequireNotMatch fails when the string contains a match of the pattern.
func RequireNotMatch(name, value string, pattern *regexp.Regexp) argue.Result[string] {
	if pattern.MatchString(value) {
		return argue.Failf[string]("Parameter '%s' cannot match pattern '%s'", name, pattern.String())
	}
	return argue.Success(value)
}

// RequireUUID validates the canonical 36-character textual UUID form.
// Length is checked before parsing to reject garbage cheaply.
func RequireUUID(name, value string) argue.Result[string] {
	if len(value) != 36 {
		return argue.Failf[string]("Parameter '%s' must be a valid UUID but was: %s", name, value)
	}
	if _, err := uuid.Parse(value); err != nil {
		return argue.Failf[string]("Parameter '%s' must be a valid UUID but was: %s", name, value)
	}
	return argue.Success(value)
}
