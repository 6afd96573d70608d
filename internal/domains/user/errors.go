package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// Service-level errors
var (
	// Login failures deliberately do not say whether the email exists
	ErrInvalidCredentials = errors.New("invalid email or password")
)
