package wire

import (
	"math"
	"slices"
	"unicode/utf8"
)

// A Reader decodes wire-format primitives from a byte slice.
//
// A Reader never reads outside the slice it was constructed over; embedded
// messages are decoded through bounded sub-readers produced by
// [Reader.ReadMessage].
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a [Reader] that decodes data.
//
// The reader does not copy data; it must not be modified until the reader is
// discarded.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.off
}

// ReadTag reads the tag that introduces the next field.
//
// It returns a field number of zero, without error, when there are no more
// fields, either because the input is exhausted or because the tag itself
// encodes field number zero.
func (r *Reader) ReadTag() (FieldNumber, Type, error) {
	if r.off == len(r.data) {
		return 0, 0, nil
	}

	tag, err := r.ReadVarint()
	if err != nil {
		return 0, 0, err
	}

	return FieldNumber(tag >> 3), Type(tag & 7), nil
}

// ReadVarint reads a variable-width integer.
func (r *Reader) ReadVarint() (uint64, error) {
	var v uint64

	for shift := 0; shift < 70; shift += 7 {
		if r.off == len(r.data) {
			return 0, ErrTruncated
		}

		b := r.data[r.off]
		r.off++

		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v, nil
		}
	}

	return 0, ErrOverflow
}

// ReadFixed32 reads 4 little-endian bytes.
func (r *Reader) ReadFixed32() (uint32, error) {
	if r.Len() < 4 {
		return 0, ErrTruncated
	}

	b := r.data[r.off:]
	r.off += 4

	return uint32(b[0]) |
		uint32(b[1])<<8 |
		uint32(b[2])<<16 |
		uint32(b[3])<<24, nil
}

// ReadFixed64 reads 8 little-endian bytes.
func (r *Reader) ReadFixed64() (uint64, error) {
	if r.Len() < 8 {
		return 0, ErrTruncated
	}

	b := r.data[r.off:]
	r.off += 8

	return uint64(b[0]) |
		uint64(b[1])<<8 |
		uint64(b[2])<<16 |
		uint64(b[3])<<24 |
		uint64(b[4])<<32 |
		uint64(b[5])<<40 |
		uint64(b[6])<<48 |
		uint64(b[7])<<56, nil
}

// ReadFloat32 reads a 4-byte little-endian IEEE 754 value.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadFixed32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an 8-byte little-endian IEEE 754 value.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadFixed64()
	return math.Float64frombits(v), err
}

// ReadBytes reads a length-delimited value into a new byte slice.
func (r *Reader) ReadBytes() ([]byte, error) {
	b, err := r.readDelimited()
	if err != nil {
		return nil, err
	}
	return slices.Clone(b), nil
}

// ReadString reads a length-delimited value as UTF-8 text.
//
// It returns [ErrInvalidUTF8] if the value is not valid UTF-8.
func (r *Reader) ReadString() (string, error) {
	b, err := r.readDelimited()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// ReadMessage reads a length-delimited value and returns a sub-reader bounded
// to exactly that value.
//
// The bound makes it impossible for a malformed embedded message to decode
// bytes that belong to its enclosing message.
func (r *Reader) ReadMessage() (Reader, error) {
	b, err := r.readDelimited()
	if err != nil {
		return Reader{}, err
	}
	return Reader{data: b}, nil
}

// Skip discards the value of a field with the given wire type.
func (r *Reader) Skip(t Type) error {
	switch t {
	case Varint:
		_, err := r.ReadVarint()
		return err
	case Fixed32:
		_, err := r.ReadFixed32()
		return err
	case Fixed64:
		_, err := r.ReadFixed64()
		return err
	case Bytes:
		_, err := r.readDelimited()
		return err
	default:
		return UnsupportedTypeError{t}
	}
}

// readDelimited reads a length prefix and returns the following bytes without
// copying them.
func (r *Reader) readDelimited() ([]byte, error) {
	n, err := r.ReadVarint()
	if err != nil {
		return nil, err
	}

	if n > uint64(r.Len()) {
		return nil, ErrTruncated
	}

	b := r.data[r.off : r.off+int(n)]
	r.off += int(n)

	return b, nil
}
