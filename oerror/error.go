package oerror

import "fmt"

// SkelsimError is an error raised by skelsim when an internal invariant is broken.
type SkelsimError struct {
	Err string
}

// New returns a new SkelsimError with the message formatted with the given arguments.
func New(format string, args ...interface{}) *SkelsimError {
	if len(args) == 0 {
		return &SkelsimError{Err: format}
	}
	return &SkelsimError{Err: fmt.Sprintf(format, args...)}
}

func (e *SkelsimError) Error() string {
	return e.Err
}
