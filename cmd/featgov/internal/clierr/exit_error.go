package clierr

import (
	"errors"
	"fmt"
)

// ExitCoder is any error that knows which process exit code it maps to.
type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError carries an explicit process exit code alongside a message and an
// optional cause. Unwrap is implemented so errors.Is/As traverse the cause.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	// Render the cause deterministically; the code never appears in the text.
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// Code exposes the exit code without forcing callers through ExitCoder.
func (e *ExitError) Code() int { return e.code }

// Message returns the top-level message without the cause.
func (e *ExitError) Message() string { return e.msg }

// New creates an ExitError with a message. Codes <= 0 are coerced to 1 since
// an error must never claim success.
func New(code int, msg string) error {
	if code <= 0 {
		code = 1
	}
	return &ExitError{code: code, msg: msg}
}

// Newf is the formatted variant of New.
func Newf(code int, format string, args ...any) error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates an ExitError around an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	err := New(code, msg).(*ExitError)
	err.cause = cause
	return err
}

// Wrapf is the formatted variant of Wrap.
func Wrapf(code int, cause error, format string, args ...any) error {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

// ExitCodeOf maps any error to a process exit code: nil is 0, an ExitCoder
// anywhere in the chain wins, everything else is 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}
