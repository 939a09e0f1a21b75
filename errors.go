package moniker

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupportedValue indicates a token or value has no mapping for the enumeration.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrUnexpectedToken indicates a wire token is not a string, integer, or null.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrNotRegistered indicates a registry has no declaration for a type.
	ErrNotRegistered = errors.New("type not registered")
)

// UnsupportedValueError reports a token (on read) or value (on write) that
// the enumeration cannot represent.
type UnsupportedValueError struct {
	Type string // Enumeration type name
	Text string // Offending token text, or the value's numeric code
}

func (e *UnsupportedValueError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("value %q not supported by %s", e.Text, e.Type)
	}
	return fmt.Sprintf("value %q not supported", e.Text)
}

func (e *UnsupportedValueError) Unwrap() error {
	return ErrUnsupportedValue
}

// TokenError reports a wire token the codec cannot interpret.
type TokenError struct {
	Format string // Wire format that produced the token (json, yaml, ...)
	Kind   string // Description of the token that was found
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrUnexpectedToken.Error(), e.Format, e.Kind)
}

func (e *TokenError) Unwrap() error {
	return ErrUnexpectedToken
}

// RegistryError reports a registry lookup failure for a type.
type RegistryError struct {
	Err  error        // Underlying sentinel error (ErrNotRegistered)
	Type reflect.Type // Type that was requested
}

func (e *RegistryError) Error() string {
	if e.Type == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Type)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

// newUnsupportedValueError creates an UnsupportedValueError.
func newUnsupportedValueError(typeName, text string) error {
	return &UnsupportedValueError{
		Type: typeName,
		Text: text,
	}
}

// NewTokenError creates a TokenError for wire adapters.
func NewTokenError(format, kind string) error {
	return newTokenError(format, kind)
}

func newTokenError(format, kind string) error {
	return &TokenError{
		Format: format,
		Kind:   kind,
	}
}

// newRegistryError creates a RegistryError for lookup failures.
func newRegistryError(sentinel error, typ reflect.Type) error {
	return &RegistryError{
		Err:  sentinel,
		Type: typ,
	}
}
