package service

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate")
	ErrNoRows       = errors.New("no rows affected")
	ErrMemberLookup = errors.New("member lookup failed")
)

// IsBusinessError reports whether err belongs to the invalid-argument class
// that the HTTP layer turns into a 400 with the error message as body.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrNoRows) ||
		errors.Is(err, ErrMemberLookup)
}
