package domain

import "errors"

// Authentication and account errors.
var (
	ErrDuplicateEmail     = errors.New("email is already in use")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrUserNotFound       = errors.New("user not found")
)

// Token errors.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Authorization errors.
var (
	ErrForbidden  = errors.New("access forbidden")
	ErrSelfAction = errors.New("cannot perform this action on your own account")
)

// ErrNotFound covers missing owned resources. An ownership mismatch is
// reported as ErrNotFound, never ErrForbidden, so a caller cannot probe for
// the existence of another user's resources.
var ErrNotFound = errors.New("resource not found")

// ErrInvalidInput covers malformed request fields rejected by the services.
var ErrInvalidInput = errors.New("invalid input")
