package unions

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDiscriminator is returned when the tag value has no registered shape.
	ErrUnknownDiscriminator = errors.New("unrecognized discriminator")
	// ErrMissingDiscriminator is returned when the object carries no tag field.
	ErrMissingDiscriminator = errors.New("missing discriminator")
)

// DecodeError reports a union payload that could not be turned into a shape.
// Value is the discriminator read from the payload, if any.
type DecodeError struct {
	Union string
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownDiscriminator):
		return fmt.Sprintf("decode %s: %s %q=%q", e.Union, e.Err, e.Field, e.Value)
	case errors.Is(e.Err, ErrMissingDiscriminator):
		return fmt.Sprintf("decode %s: %s %q", e.Union, e.Err, e.Field)
	case e.Value != "":
		return fmt.Sprintf("decode %s (%s=%q): %v", e.Union, e.Field, e.Value, e.Err)
	default:
		return fmt.Sprintf("decode %s: %v", e.Union, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
