package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors
var (
	// ErrUnknownKind is returned when a kind token matches no registered kind
	ErrUnknownKind = errors.New("unknown kind")

	// ErrNotCapable is returned when an employee lacks the requested capability
	ErrNotCapable = errors.New("capability not supported")

	// ErrInvalidEntry is returned when an entity cannot be constructed from its input
	ErrInvalidEntry = errors.New("invalid entry")
)

// UnknownKindError reports a kind token that resolved to nothing.
// Available lists the kinds that would have been accepted.
type UnknownKindError struct {
	Domain    string
	Token     string
	Available []string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown %s type %q (available: %s)", e.Domain, e.Token, strings.Join(e.Available, ", "))
}

func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// CapabilityError reports an employee asked to perform care it does not offer.
type CapabilityError struct {
	Employee   string
	Role       string
	Capability Capability
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s (%s) cannot %s animals", e.Employee, e.Role, e.Capability.Verb())
}

func (e *CapabilityError) Is(target error) bool {
	return target == ErrNotCapable
}

// InvalidEntryError reports malformed entity input.
type InvalidEntryError struct {
	Field   string
	Message string
}

func (e *InvalidEntryError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid entry for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid entry: %s", e.Message)
}

func (e *InvalidEntryError) Is(target error) bool {
	return target == ErrInvalidEntry
}

// NewUnknownKindError creates a new UnknownKindError
func NewUnknownKindError(domain, token string, available []string) error {
	return &UnknownKindError{Domain: domain, Token: token, Available: append([]string(nil), available...)}
}

// NewInvalidEntryError creates a new InvalidEntryError
func NewInvalidEntryError(field, message string) error {
	return &InvalidEntryError{Field: field, Message: message}
}

// IsUnknownKind checks if an error is an unknown kind error
func IsUnknownKind(err error) bool {
	return errors.Is(err, ErrUnknownKind)
}

// IsNotCapable checks if an error is a capability error
func IsNotCapable(err error) bool {
	return errors.Is(err, ErrNotCapable)
}

// IsInvalidEntry checks if an error is an invalid entry error
func IsInvalidEntry(err error) bool {
	return errors.Is(err, ErrInvalidEntry)
}
