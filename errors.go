package serde

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrSink indicates the underlying sink rejected a write.
	ErrSink = errors.New("sink write failed")

	// ErrInvalidText indicates serialized output is not valid UTF-8 text.
	ErrInvalidText = errors.New("output is not valid UTF-8")

	// ErrUnsupported indicates a Go type has no protocol mapping.
	ErrUnsupported = errors.New("unsupported type")
)

// SinkError represents a failed sink write. It is fatal to the serialization
// pass that owns the sink: the error propagates unchanged to the top-level
// caller with no partial-output guarantee.
type SinkError struct {
	Err   error // Underlying sentinel error (ErrSink)
	Cause error // Original error from the sink
}

func (e *SinkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// InvalidTextError reports that serialized bytes could not be interpreted as
// UTF-8 text. Bytes carries the raw output so callers can still recover it.
type InvalidTextError struct {
	Err   error  // Underlying sentinel error (ErrInvalidText)
	Bytes []byte // Raw serialized output
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("%s (%d bytes)", e.Err.Error(), len(e.Bytes))
}

func (e *InvalidTextError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError reports that Reflect met a Go type with no protocol
// mapping (chan, func, complex, unsafe pointer).
type UnsupportedTypeError struct {
	Err  error        // Underlying sentinel error (ErrUnsupported)
	Type reflect.Type // Type that could not be serialized
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Type)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return e.Err
}

// NewSinkError wraps a sink write failure. Backends call this at the write
// site; the error then propagates through nested visits without re-wrapping.
func NewSinkError(cause error) error {
	return &SinkError{
		Err:   ErrSink,
		Cause: cause,
	}
}

// NewInvalidTextError creates an InvalidTextError carrying the raw output.
func NewInvalidTextError(raw []byte) error {
	return &InvalidTextError{
		Err:   ErrInvalidText,
		Bytes: raw,
	}
}

// newUnsupportedTypeError creates an UnsupportedTypeError for rt.
func newUnsupportedTypeError(rt reflect.Type) error {
	return &UnsupportedTypeError{
		Err:  ErrUnsupported,
		Type: rt,
	}
}
