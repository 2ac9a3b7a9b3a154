package str

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireNonBlank(t *testing.T) {
	t.Parallel()

	r := RequireNonBlank("name", "hello")
	assert.True(t, r.IsSuccess())
	assert.Equal(t, "hello", r.Value())

	assert.True(t, RequireNonBlank("name", " padded ").IsSuccess())
	assert.True(t, RequireNonBlank("name", "").IsFailure())
	assert.EqualError(t, RequireNonBlank("name", "   ").Err(),
		"Parameter 'name' cannot be empty or contain only whitespace characters")
	assert.True(t, RequireNonBlank("name", "\t\n").IsFailure())
}

func TestRequireLengthBe_CountsBytes(t *testing.T) {
	t.Parallel()

	// One CJK character encodes to three bytes.
	assert.True(t, RequireLengthBe("s", "汉", 3).IsSuccess())
	assert.True(t, RequireLengthBe("s", "汉", 1).IsFailure())

	assert.EqualError(t, RequireLengthBe("s", "abc", 2).Err(),
		"Parameter 's' length must be 2 but was 3")
	assert.True(t, RequireLengthBe("s", "", 0).IsSuccess())
}

func TestRequireLengthAtLeast(t *testing.T) {
	t.Parallel()

	assert.True(t, RequireLengthAtLeast("s", "abc", 3).IsSuccess())
	assert.True(t, RequireLengthAtLeast("s", "abc", 4).IsFailure())
	assert.EqualError(t, RequireLengthAtLeast("s", "ab", 3).Err(),
		"Parameter 's' length must be at least 3 but was 2")
}

func TestRequireLengthAtMost(t *testing.T) {
	t.Parallel()

	assert.True(t, RequireLengthAtMost("s", "abc", 3).IsSuccess())
	assert.True(t, RequireLengthAtMost("s", "abcd", 3).IsFailure())
	assert.EqualError(t, RequireLengthAtMost("s", "abcd", 3).Err(),
		"Parameter 's' length must be at most 3 but was 4")
}

func TestRequireLengthInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, RequireLengthInRange("s", "abc", 1, 5).IsSuccess())
	assert.True(t, RequireLengthInRange("s", "abc", 3, 3).IsSuccess())
	assert.True(t, RequireLengthInRange("s", "abc", 4, 5).IsFailure())
	assert.EqualError(t, RequireLengthInRange("s", "abcdef", 1, 5).Err(),
		"Parameter 's' length must be in range [1, 5] but was 6")

	// Inverted bounds: every string fails.
	assert.True(t, RequireLengthInRange("s", "abc", 5, 1).IsFailure())
}

func TestRequireMatch(t *testing.T) {
	t.Parallel()

	digits := regexp.MustCompile(`\d+`)

	// Partial match: any contained match passes.
	assert.True(t, RequireMatch("s", "abc123", digits).IsSuccess())
	assert.True(t, RequireMatch("s", "abc", digits).IsFailure())
	assert.EqualError(t, RequireMatch("s", "abc", digits).Err(),
		`Parameter 's' must match pattern '\d+'`)

	anchored := regexp.MustCompile(`^\d+$`)
	assert.True(t, RequireMatch("s", "abc123", anchored).IsFailure())
	assert.True(t, RequireMatch("s", "123", anchored).IsSuccess())
}

func TestRequireNotMatch(t *testing.T) {
	t.Parallel()

	digits := regexp.MustCompile(`\d+`)

	assert.True(t, RequireNotMatch("s", "abc", digits).IsSuccess())
	assert.True(t, RequireNotMatch("s", "abc123", digits).IsFailure())
	assert.EqualError(t, RequireNotMatch("s", "abc123", digits).Err(),
		`Parameter 's' cannot match pattern '\d+'`)
}

func TestRequireUUID(t *testing.T) {
	t.Parallel()

	valid := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	r := RequireUUID("id", valid)
	assert.True(t, r.IsSuccess())
	assert.Equal(t, valid, r.Value())

	assert.True(t, RequireUUID("id", "").IsFailure())
	assert.True(t, RequireUUID("id", "not-a-uuid").IsFailure())
	assert.True(t, RequireUUID("id", "6ba7b810-9dad-11d1-80b4-00c04fd430cZ").IsFailure())
	assert.EqualError(t, RequireUUID("id", "nope").Err(),
		"Parameter 'id' must be a valid UUID but was: nope")
}
