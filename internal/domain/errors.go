package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound signals an unknown room, user or slug.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a duplicate unique key (email, slug).
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password, so callers cannot probe for account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError enumerates every failing field of a request.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// ErrOrNil returns the error only when at least one field failed.
func (e *ValidationError) ErrOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
