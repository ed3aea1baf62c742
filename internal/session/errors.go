package session

import "errors"

var (
	ErrInvalidCredentials = errors.New("email or password is not valid")
	ErrEmailTaken         = errors.New("this email is already taken")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmptyCredentials   = errors.New("email and password are required")
	ErrNoGuestToken       = errors.New("guest login is not configured")
	ErrAuthUnavailable    = errors.New("authentication service unavailable")
)
