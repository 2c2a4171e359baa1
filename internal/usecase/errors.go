package usecase

import "errors"

// Shared sentinel errors. Usecases return these (or their own, more specific
// sentinels) so handlers can map outcomes to HTTP statuses without string
// matching.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrUserNotFound = errors.New("user not found")
	ErrJobNotFound  = errors.New("job not found")
	ErrInternal     = errors.New("internal error")
)
