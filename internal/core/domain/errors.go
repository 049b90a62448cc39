package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// ErrorKind tags an AppError with the category the caller should react to
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindDuplicateResource
	KindAuthentication
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicateResource:
		return "duplicate_resource"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// AppError is the error returned across the core boundary.
// Details carries per-field messages for validation failures.
type AppError struct {
	Kind    ErrorKind
	Message string
	Details map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError of the same kind and message, so package-level
// AppError values can be used with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// Auth errors
var (
	ErrInvalidCredentials = &AppError{Kind: KindAuthentication, Message: "Invalid email or password"}
	ErrInvalidToken       = &AppError{Kind: KindAuthentication, Message: "Invalid or expired token"}
	ErrEmailTaken         = &AppError{Kind: KindDuplicateResource, Message: "Email already registered"}
)

// Recommendation errors
var (
	ErrRecommendationNotFound = &AppError{Kind: KindNotFound, Message: "Recommendation not found"}
)

// NewValidationError builds a validation failure with field-level detail
func NewValidationError(message string, details map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

// NewInternalError wraps an unexpected failure; the cause is for logs only
func NewInternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf returns the kind of err, treating anything untagged as internal
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
