package errs

import (
	"errors"
)

// Sentinel errors carry the exact status messages shown to the caller.
var (
	ErrInvalidInput      = errors.New("Invalid Input")
	ErrNameEmail         = errors.New("Enter valid Name and Email")
	ErrDuplicateID       = errors.New("Duplicate Book ID")
	ErrNotAvailable      = errors.New("Book not available")
	ErrAlreadyReserved   = errors.New("Book already reserved")
	ErrReservedByAnother = errors.New("Book reserved by another user")
	ErrNotFound          = errors.New("Book Not Found")
)
