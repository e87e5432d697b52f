package core

import "fmt"

// AssertionError is raised on precondition violations: programming errors in
// game setup that the engine does not recover from
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string {
	return "assertion failed: " + e.Msg
}

// FatalError is raised when a required resource cannot be produced
type FatalError struct {
	Msg string
	Err error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return "fatal: " + e.Msg + ": " + e.Err.Error()
	}
	return "fatal: " + e.Msg
}

func (e *FatalError) Unwrap() error { return e.Err }

// Assert panics with an AssertionError when cond is false
func Assert(cond bool, msg string) {
	if !cond {
		panic(&AssertionError{Msg: msg})
	}
}

// Assertf is Assert with a formatted message
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(&AssertionError{Msg: fmt.Sprintf(format, args...)})
	}
}

// Fatal panics with a FatalError wrapping err
func Fatal(err error, format string, args ...any) {
	panic(&FatalError{Msg: fmt.Sprintf(format, args...), Err: err})
}
