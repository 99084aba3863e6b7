package utils

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrCityNotFound       = errors.New("city not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrSelfDeletion       = errors.New("cannot delete own account")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
	ErrSeedDisabled       = errors.New("seeding is disabled in production")
	ErrVersionConflict    = errors.New("trip was modified concurrently")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
