package repositories

import "errors"

var (
	// ErrDuplicatePair is returned when an association for the same
	// (subject, object) pair already exists.
	ErrDuplicatePair = errors.New("relationship already exists")

	// ErrInvalidDate is returned when a message date filter is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
