package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("not found")

// ValidationError rejects a request before any state is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConflictError carries the entities the request collided with.
type ConflictError struct {
	Message      string
	Reservations []Reservation
	Blocked      []BlockedRange
}

func (e *ConflictError) Error() string {
	if len(e.Reservations) == 0 {
		return e.Message
	}
	ids := make([]string, 0, len(e.Reservations))
	for _, r := range e.Reservations {
		ids = append(ids, r.ID)
	}
	return fmt.Sprintf("%s: conflicts with %s", e.Message, strings.Join(ids, ","))
}

// DependencyError wraps a failure of an external collaborator. Callers may retry.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

func NewDependencyError(dependency string, err error) error {
	return &DependencyError{Dependency: dependency, Err: err}
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ForbiddenError rejects an actor acting on an entity they do not own.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsDependency(err error) bool {
	var d *DependencyError
	return errors.As(err, &d)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsForbidden(err error) bool {
	var f *ForbiddenError
	return errors.As(err, &f)
}
