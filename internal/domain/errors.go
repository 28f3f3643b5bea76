package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Auth errors
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenMalformed     = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// Movie errors
var (
	ErrMovieNotFound  = errors.New("movie not found")
	ErrNotMovieOwner  = errors.New("movie belongs to another user")
	ErrDuplicateMovie = errors.New("movie with this title and year already exists for user")
)

// Provider errors
var (
	ErrProviderNotFound    = errors.New("no results from provider")
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates per-field problems. It is detected before
// any persistence attempt and maps to a 400 with the field list.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
