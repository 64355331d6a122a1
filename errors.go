package binio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDescriptor is returned when a type descriptor is not one
	// of the recognized atomic names, or carries an array/pointer marker
	// where a plain atomic is required.
	ErrInvalidDescriptor = errors.New("invalid type descriptor")

	// ErrInvalidWhence is returned when a positioning operation receives
	// a whence outside {Start, Current}.
	ErrInvalidWhence = errors.New("invalid whence")
)

// EncodingError indicates a value that cannot be encoded as the target
// descriptor: an out-of-range integer, a float beyond float32 range, a
// non-ASCII cstring character, or a payload kind that does not match the
// descriptor.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type EncodingError struct {
	Descriptor Descriptor
	Value      Value
	Reason     string
	cause      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode %s as %s: %s", e.Value, e.Descriptor, e.Reason)
}

func (e *EncodingError) Unwrap() error { return e.cause }

func encodingErr(d Descriptor, v Value, reason string) error {
	return &EncodingError{Descriptor: d, Value: v, Reason: reason}
}
