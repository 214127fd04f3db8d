package domain

import "errors"

var (
	ErrNoSession          = errors.New("no active session")
	ErrAuthExpired        = errors.New("authentication expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrBackendUnavailable = errors.New("marketplace backend unavailable")
)
