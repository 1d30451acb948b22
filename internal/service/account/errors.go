package account

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email address already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrInvalidLicense     = errors.New("lab license number must start with LAB-")
	ErrInvalidRole        = errors.New("role must be lab or member")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountNotFound    = errors.New("account not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
