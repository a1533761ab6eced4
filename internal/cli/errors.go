package cli

import (
	"errors"
	"fmt"

	"calgrid/internal/model"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

// dateSyntaxError is input that does not look like any accepted date form.
type dateSyntaxError struct {
	input string
}

func (e dateSyntaxError) Error() string {
	return fmt.Sprintf("invalid date %q (expected dd.MM.yyyy, YYYY-MM-DD or today)", e.input)
}

func (e dateSyntaxError) Is(target error) bool {
	return target == model.ErrInvalidDate
}

// reportedError marks an error already printed to stderr by writeErr.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already printed for the user.
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
