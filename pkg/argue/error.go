package argue

import "fmt"

// ArgumentError describes a single failed precondition. The message always
// names what failed; checks that know the parameter name and offending
// value include both.
type ArgumentError struct {
	message string
}

func NewError(message string) *ArgumentError {
	if message == "" {
		message = "argument validation failed"
	}
	return &ArgumentError{message: message}
}

func Errorf(format string, args ...any) *ArgumentError {
	return NewError(fmt.Sprintf(format, args...))
}

// Message returns the human-readable description of the failure.
func (e *ArgumentError) Message() string {
	return e.message
}

func (e *ArgumentError) Error() string {
	return e.message
}
