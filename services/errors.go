package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Edmond40/hotel-management-system/models"
)

// ErrNotFound maps to 404 at the HTTP boundary.
var ErrNotFound = errors.New("record not found")

// ErrEmailInUse maps to 409 on signup.
var ErrEmailInUse = errors.New("email already in use")

// ErrInvalidCredentials maps to 401 on signin.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError carries a field -> message map so clients can render
// per-field errors. It is expected input, never logged as exceptional.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// ConflictError is the first-class double-booking error. The conflicting
// reservations ride along so the UI can display them.
type ConflictError struct {
	Conflicts []models.Reservation
}

func (e *ConflictError) Error() string {
	return "room is already booked for the selected dates"
}
