package rose

import (
	"errors"
	"fmt"

	"github.com/rose-codec/rosebuf/ber"
)

// Sentinel kinds mirroring package ber's, surfaced at the rose layer so
// callers never need to import ber just to compare an error kind.
var (
	ErrBufferUnderrun   = ber.ErrBufferUnderrun
	ErrBufferOverrun    = ber.ErrBufferOverrun
	ErrUnexpectedTag    = ber.ErrUnexpectedTag
	ErrMalformedLength  = ber.ErrMalformedLength
	ErrValueOutOfRange  = ber.ErrValueOutOfRange
	ErrMaxDepthExceeded = ber.ErrMaxDepthExceeded
)

// ErrUnknownOperation and ErrUnknownError mean a component's invoke-id-to-
// operation or error-code lookup, keyed against the active dialect's
// table, found nothing. They are distinct from the ber-layer sentinels:
// the bytes parsed fine, the dialect just doesn't define that code.
var (
	ErrUnknownOperation = errors.New("rose: unrecognized operation code for dialect")
	ErrUnknownError     = errors.New("rose: unrecognized error code for dialect")
	ErrUnsupportedCodec = errors.New("rose: operation has no registered argument/result codec")
)

// DecodeError reports the field or component that failed, wrapping one of
// the sentinel kinds above. It threads the same "where did this fail"
// context the original C decoder passed explicitly as a name string to
// every rose_dec_* call.
type DecodeError struct {
	Component string
	Field     string
	Err       error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("rose: decode %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("rose: decode %s.%s: %v", e.Component, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// wrapDecode builds a DecodeError, or returns nil if err is nil — so call
// sites can write `if err := wrapDecode(...); err != nil { return err }`
// without a preceding nil check.
func wrapDecode(component, field string, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Component: component, Field: field, Err: err}
}

// EncodeError reports the field or component that failed to encode.
type EncodeError struct {
	Component string
	Field     string
	Err       error
}

func (e *EncodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("rose: encode %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("rose: encode %s.%s: %v", e.Component, e.Field, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func wrapEncode(component, field string, err error) error {
	if err == nil {
		return nil
	}
	return &EncodeError{Component: component, Field: field, Err: err}
}
