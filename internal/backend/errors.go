package backend

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call. Every failure the client surfaces
// has exactly one kind; callers branch on it instead of raw status codes.
type Kind int

const (
	// KindNetwork means no usable response was received at all.
	KindNetwork Kind = iota
	// KindUnauthorized is HTTP 401. The caller must clear the session
	// before surfacing it.
	KindUnauthorized
	// KindNotFound is HTTP 404.
	KindNotFound
	// KindValidation is any other 4xx carrying a structured error body.
	KindValidation
	// KindServer is any 5xx.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	}
	return "network"
}

// Error is the classified failure of one backend call.
type Error struct {
	Kind    Kind
	Status  int // 0 for network failures
	Message string
	// Fields holds per-field validation messages when the backend returned
	// them (Django REST style: {"field": ["msg", ...]}).
	Fields map[string][]string
	cause  error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("backend: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("backend: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// IsKind reports whether err is a backend error of the given kind.
func IsKind(err error, kind Kind) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == kind
}

func IsUnauthorized(err error) bool { return IsKind(err, KindUnauthorized) }
func IsNotFound(err error) bool     { return IsKind(err, KindNotFound) }
