//go:build stacktrace

//nolint:goerr113
package ierrors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// maxStackDepth is the maximum amount of frames that are recorded.
const maxStackDepth = 32

// errorWithStacktrace annotates an error tree with the stack of the goroutine that created it.
type errorWithStacktrace struct {
	err        error
	stacktrace string
}

func (e *errorWithStacktrace) Error() string {
	return e.err.Error() + "\n" + e.stacktrace
}

func (e *errorWithStacktrace) Unwrap() error {
	return e.err
}

func stacktrace() string {
	var programCounters [maxStackDepth]uintptr
	frames := runtime.CallersFrames(programCounters[:runtime.Callers(4, programCounters[:])])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		if frame == (runtime.Frame{}) {
			break
		}

		if builder.Len() != 0 {
			builder.WriteString("\n")
		}
		fmt.Fprintf(&builder, "%s\n\t%s:%d", frame.Function, frame.File, frame.Line)

		if !more {
			break
		}
	}

	return builder.String()
}

// withStacktrace adds a stacktrace to err unless its tree already carries one.
func withStacktrace(err error) error {
	if err == nil {
		return nil
	}

	var existing *errorWithStacktrace
	if errors.As(err, &existing) {
		return err
	}

	return &errorWithStacktrace{err: err, stacktrace: stacktrace()}
}

// Join returns an error that wraps the given errors (nil values are discarded). It returns nil if errs contains no
// non-nil values.
func Join(errs ...error) error {
	return withStacktrace(errors.Join(errs...))
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error. Every %w
// operand is wrapped.
func Errorf(format string, args ...any) error {
	return withStacktrace(fmt.Errorf(format, args...))
}

// Wrap prepends a message to err: "message: err".
func Wrap(err error, message string) error {
	return withStacktrace(fmt.Errorf("%s: %w", message, err))
}

// Wrapf prepends a formatted message to err. Error operands of the message are wrapped as well.
func Wrapf(err error, format string, args ...any) error {
	if containsError(args) {
		return withStacktrace(fmt.Errorf("%w: %w", fmt.Errorf(format, args...), err))
	}

	return withStacktrace(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err))
}

// WithMessage appends a message to err: "err: message".
func WithMessage(err error, message string) error {
	return withStacktrace(fmt.Errorf("%w: %s", err, message))
}

// WithMessagef appends a formatted message to err. Error operands of the message are wrapped as well.
func WithMessagef(err error, format string, args ...any) error {
	if containsError(args) {
		return withStacktrace(fmt.Errorf("%w: %w", err, fmt.Errorf(format, args...)))
	}

	return withStacktrace(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}

// WithStack adds a stacktrace to err unless its tree already carries one.
func WithStack(err error) error {
	return withStacktrace(err)
}
