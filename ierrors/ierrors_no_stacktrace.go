//go:build !stacktrace

//nolint:goerr113
package ierrors

import (
	"errors"
	"fmt"
)

// Join returns an error that wraps the given errors (nil values are discarded). It returns nil if errs contains no
// non-nil values.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error. Every %w
// operand is wrapped.
func Errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Wrap prepends a message to err: "message: err".
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf prepends a formatted message to err. Error operands of the message are wrapped as well.
func Wrapf(err error, format string, args ...any) error {
	if containsError(args) {
		return fmt.Errorf("%w: %w", fmt.Errorf(format, args...), err)
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WithMessage appends a message to err: "err: message".
func WithMessage(err error, message string) error {
	return fmt.Errorf("%w: %s", err, message)
}

// WithMessagef appends a formatted message to err. Error operands of the message are wrapped as well.
func WithMessagef(err error, format string, args ...any) error {
	if containsError(args) {
		return fmt.Errorf("%w: %w", err, fmt.Errorf(format, args...))
	}

	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}

// WithStack returns err unchanged unless the "stacktrace" build tag is set.
func WithStack(err error) error {
	return err
}
