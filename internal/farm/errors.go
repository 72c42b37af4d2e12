package farm

import "errors"

var (
	// ErrInvalidInput reports a value outside the range the game accepts, such as
	// a harvest weight below the minimum viable size.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPreconditionViolation reports a caller bug: a name that does not exist
	// in the catalog or recipe tables.
	ErrPreconditionViolation = errors.New("precondition violation")
)
