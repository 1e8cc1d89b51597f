package ber

import "errors"

// Sentinel errors for the primitive BER layer. Higher layers (package rose)
// wrap these with field/component context rather than inventing new kinds.
var (
	// ErrBufferUnderrun means a primitive or constructed length ran past
	// the end of the supplied input range.
	ErrBufferUnderrun = errors.New("ber: buffer underrun")
	// ErrBufferOverrun means the supplied output buffer was too small.
	ErrBufferOverrun = errors.New("ber: buffer overrun")
	// ErrUnexpectedTag means the tag at the current position did not
	// match any alternative the grammar permits here.
	ErrUnexpectedTag = errors.New("ber: unexpected tag")
	// ErrMalformedLength means the length encoding used a reserved form,
	// or an end-of-contents marker appeared where it is not allowed.
	ErrMalformedLength = errors.New("ber: malformed length")
	// ErrValueOutOfRange means a constrained numeric or string value
	// exceeded its specification bounds.
	ErrValueOutOfRange = errors.New("ber: value out of range")
	// ErrMaxDepthExceeded guards indefinite-length nesting from runaway
	// recursion on crafted input.
	ErrMaxDepthExceeded = errors.New("ber: maximum nesting depth exceeded")
)
