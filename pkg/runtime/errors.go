package runtime

import "fmt"

// ErrorKind classifies the two fatal evaluation failures.
type ErrorKind string

const (
	NameError ErrorKind = "NameError"
	TypeError ErrorKind = "TypeError"
)

// RuntimeError aborts a run on first detection. It is returned, never
// recovered: the language has no exception-handling construct.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NameErrorf(format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: NameError, Message: fmt.Sprintf(format, args...)}
}

func TypeErrorf(format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: TypeError, Message: fmt.Sprintf(format, args...)}
}
