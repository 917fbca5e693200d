// Package ierrors wraps the "errors" package of the standard library and adds helpers to annotate errors with
// messages. If the "stacktrace" build tag is set, every annotated error tree additionally carries exactly one
// stacktrace that points to the place where the tree was first annotated.
//
//nolint:goerr113
package ierrors

import (
	"errors"
)

// New returns an error that formats as the given text. Each call returns a distinct error value, so New is meant to
// be used for package level sentinel errors.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target, and if one is found, sets target to that error value and
// returns true.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if err's type contains an Unwrap method returning
// error. Otherwise, Unwrap returns nil.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// containsError returns true if one of the given format arguments is an error.
func containsError(args []any) bool {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			return true
		}
	}

	return false
}
