package plain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below unwraps to one of these, so callers
// can classify failures with errors.Is.
var (
	ErrConfig          = errors.New("invalid plain data configuration")
	ErrShape           = errors.New("invalid plain data shape")
	ErrAttribute       = errors.New("attribute error")
	ErrIllegalMutation = errors.New("illegal state mutation")
	ErrFieldName       = errors.New("unknown field")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrUnhashable      = errors.New("unhashable type")
	ErrInvariant       = errors.New("invariant violated")
)

// ConfigError reports an incoherent configuration or an invalid comparison.
type ConfigError struct {
	Type   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Type == "" {
		return "plaindata: " + e.Reason
	}

	return fmt.Sprintf("plaindata: %s: %s", e.Type, e.Reason)
}

func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConfig, e.Err}
	}

	return []error{ErrConfig}
}

// ShapeError reports a target type that cannot be treated as plain data.
type ShapeError struct {
	Type   string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("plaindata: %s: %s", e.Type, e.Reason)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// FrozenAttributeError is returned when a frozen instance is asked to change
// after construction. The instance is left exactly as it was.
type FrozenAttributeError struct {
	Field string
	Type  string
	Op    string // "assign" or "delete"
}

func (e *FrozenAttributeError) Error() string {
	return fmt.Sprintf("plaindata: cannot %s field %q of frozen %s", e.Op, e.Field, e.Type)
}

// Unwrap classifies the error as an attribute error that is also an illegal state mutation.
func (e *FrozenAttributeError) Unwrap() []error {
	return []error{ErrAttribute, ErrIllegalMutation}
}

// FieldNameError is returned when a name is not one of the declared fields.
type FieldNameError struct {
	Field      string
	Type       string
	Suggestion string
}

func (e *FieldNameError) Error() string {
	msg := fmt.Sprintf("plaindata: %s has no field %q", e.Type, e.Field)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

func (e *FieldNameError) Unwrap() error { return ErrFieldName }

// TypeMismatchError is returned when a value is not of the expected kind: a
// target that is not an augmented type or instance, or a field value of the wrong type.
type TypeMismatchError struct {
	Want string
	Got  string
	// Field is set when the mismatch concerns a single field value.
	Field string
}

func (e *TypeMismatchError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("plaindata: field %q wants %s, got %s", e.Field, e.Want, e.Got)
	}

	return fmt.Sprintf("plaindata: want %s, got %s", e.Want, e.Got)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// UnhashableTypeError is returned when hashing is disabled for a type or when a field value cannot be hashed.
type UnhashableTypeError struct {
	Type   string
	Field  string
	Reason string
}

func (e *UnhashableTypeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("plaindata: unhashable %s: field %q: %s", e.Type, e.Field, e.Reason)
	}

	return fmt.Sprintf("plaindata: unhashable %s: %s", e.Type, e.Reason)
}

func (e *UnhashableTypeError) Unwrap() error { return ErrUnhashable }

// InvariantError is returned when construction produces a value that violates
// a declared invariant or the type's own Validate method.
type InvariantError struct {
	Type      string
	Invariant string
	Err       error
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("plaindata: %s: invariant %s: %v", e.Type, e.Invariant, e.Err)
	}

	return fmt.Sprintf("plaindata: %s: invariant %s does not hold", e.Type, e.Invariant)
}

func (e *InvariantError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvariant, e.Err}
	}

	return []error{ErrInvariant}
}
