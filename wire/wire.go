// Package wire implements the low-level protocol-buffers binary wire format:
// varint, fixed-width and length-delimited primitives framed by field tags.
//
// It is the runtime encoding layer used by code produced by the
// [github.com/dogmatiq/wirekit/gen] package, but it has no dependency on code
// generation and can be used to read and write wire-compatible data directly.
package wire

import (
	"errors"
	"strconv"
)

// Type identifies how a field's value is framed on the wire.
//
// It occupies the low 3 bits of a field's tag.
type Type uint8

// The wire types understood by this package. The deprecated group types are
// intentionally absent; tags that carry them fail to decode.
const (
	// Varint identifies a variable-width integer value.
	Varint Type = 0

	// Fixed64 identifies an 8-byte little-endian value.
	Fixed64 Type = 1

	// Bytes identifies a length-delimited value, such as a string, byte
	// sequence or embedded message.
	Bytes Type = 2

	// Fixed32 identifies a 4-byte little-endian value.
	Fixed32 Type = 5
)

// FieldNumber is the numeric identifier of a field within a message.
//
// Valid field numbers are positive; a decoded field number of zero indicates
// the end of a message.
type FieldNumber uint32

var (
	// ErrTruncated indicates that the input ended before a complete value
	// could be read.
	ErrTruncated = errors.New("unexpected end of wire data")

	// ErrOverflow indicates that a varint exceeded the largest encodable
	// width of 10 bytes.
	ErrOverflow = errors.New("varint overflows 64 bits")

	// ErrInvalidUTF8 indicates that a length-delimited value decoded as text
	// is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("text value is not valid UTF-8")
)

// UnsupportedTypeError indicates that a decoded tag carries a wire type that
// this package cannot skip or decode, such as the deprecated group types.
type UnsupportedTypeError struct {
	Type Type
}

func (e UnsupportedTypeError) Error() string {
	return "unsupported wire type " + strconv.Itoa(int(e.Type))
}
