package wire

import (
	"io"
	"math"
	"slices"
	"sync"
)

// A Sink supplies the writable windows that a [Writer] encodes into.
type Sink interface {
	// Next commits the first n bytes of the previously returned window and
	// returns a new window of at least size bytes.
	Next(n, size int) ([]byte, error)
}

// BufferSink is a [Sink] that accumulates committed bytes in memory.
//
// The zero value is ready for use.
type BufferSink struct {
	buf []byte
}

// Next commits the first n bytes of the previously returned window and
// returns a new window of at least size bytes.
func (s *BufferSink) Next(n, size int) ([]byte, error) {
	s.buf = s.buf[:len(s.buf)+n]
	s.buf = slices.Grow(s.buf, size)
	return s.buf[len(s.buf):cap(s.buf)], nil
}

// Bytes returns the bytes committed to the sink so far.
//
// The returned slice is invalidated by the next call to [BufferSink.Next].
func (s *BufferSink) Bytes() []byte {
	return s.buf
}

// Reset discards all committed bytes, retaining the underlying storage.
func (s *BufferSink) Reset() {
	s.buf = s.buf[:0]
}

// streamSinkWindowSize is the window size used by [StreamSink] when the
// writer does not ask for more.
const streamSinkWindowSize = 512

// StreamSink is a [Sink] that forwards committed bytes to an [io.Writer].
type StreamSink struct {
	w   io.Writer
	buf []byte
}

// NewStreamSink returns a [Sink] that forwards committed bytes to w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

// Next commits the first n bytes of the previously returned window and
// returns a new window of at least size bytes.
func (s *StreamSink) Next(n, size int) ([]byte, error) {
	if n != 0 {
		if _, err := s.w.Write(s.buf[:n]); err != nil {
			return nil, err
		}
	}

	if size < streamSinkWindowSize {
		size = streamSinkWindowSize
	}
	if len(s.buf) < size {
		s.buf = make([]byte, size)
	}

	return s.buf, nil
}

// A Writer encodes wire-format primitives into windows obtained from a
// [Sink].
//
// Write errors are sticky: once a write fails every subsequent write is a
// no-op, and the first error is reported by [Writer.Err] and [Writer.Flush].
type Writer struct {
	sink Sink
	win  []byte
	n    int
	err  error
}

// NewWriter returns a [Writer] that encodes into windows obtained from sink.
func NewWriter(sink Sink) *Writer {
	return &Writer{sink: sink}
}

// Reset discards any unflushed bytes and directs subsequent writes to sink.
func (w *Writer) Reset(sink Sink) {
	w.sink = sink
	w.win = nil
	w.n = 0
	w.err = nil
}

// Err returns the first error encountered by a write, if any.
func (w *Writer) Err() error {
	return w.err
}

// Flush commits all written bytes to the sink.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}

	if w.n != 0 {
		w.win, w.err = w.sink.Next(w.n, 0)
		w.n = 0
	}

	return w.err
}

// reserve returns a window with at least n writable bytes remaining, flushing
// the written prefix and acquiring a new window if necessary.
//
// It returns nil if the writer has already failed.
func (w *Writer) reserve(n int) []byte {
	if w.err != nil {
		return nil
	}

	if len(w.win)-w.n < n {
		w.win, w.err = w.sink.Next(w.n, n)
		w.n = 0

		if w.err != nil {
			return nil
		}
	}

	return w.win[w.n:]
}

// WriteTag writes the tag that introduces a field.
func (w *Writer) WriteTag(num FieldNumber, t Type) {
	w.WriteVarint(uint64(num)<<3 | uint64(t))
}

// WriteVarint writes v as a variable-width integer.
func (w *Writer) WriteVarint(v uint64) {
	// A 64-bit varint is at most 10 bytes long.
	buf := w.reserve(10)
	if buf == nil {
		return
	}

	n := 0
	for v >= 0x80 {
		buf[n] = byte(v) | 0x80
		v >>= 7
		n++
	}
	buf[n] = byte(v)
	w.n += n + 1
}

// WriteFixed32 writes v as 4 little-endian bytes.
func (w *Writer) WriteFixed32(v uint32) {
	buf := w.reserve(4)
	if buf == nil {
		return
	}

	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
	w.n += 4
}

// WriteFixed64 writes v as 8 little-endian bytes.
func (w *Writer) WriteFixed64(v uint64) {
	buf := w.reserve(8)
	if buf == nil {
		return
	}

	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
	buf[4] = byte(v >> 32)
	buf[5] = byte(v >> 40)
	buf[6] = byte(v >> 48)
	buf[7] = byte(v >> 56)
	w.n += 8
}

// WriteFloat32 writes v as a 4-byte little-endian IEEE 754 value.
func (w *Writer) WriteFloat32(v float32) {
	w.WriteFixed32(math.Float32bits(v))
}

// WriteFloat64 writes v as an 8-byte little-endian IEEE 754 value.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteFixed64(math.Float64bits(v))
}

// WriteBytes writes b as a length-delimited value.
func (w *Writer) WriteBytes(b []byte) {
	w.WriteVarint(uint64(len(b)))
	w.writeRaw(b)
}

// WriteString writes s as a length-delimited value.
//
// The length is known before any byte of s is written, so no intermediate
// copy of s is made.
func (w *Writer) WriteString(s string) {
	w.WriteVarint(uint64(len(s)))

	// Identical to writeRaw, but ranging over the string directly avoids an
	// unsafe conversion or a copy.
	for len(s) > 0 && w.err == nil {
		if len(w.win)-w.n == 0 {
			w.win, w.err = w.sink.Next(w.n, 1)
			w.n = 0
			continue
		}

		n := copy(w.win[w.n:], s)
		w.n += n
		s = s[n:]
	}
}

// WriteMessage writes an embedded message as a length-delimited field with
// the given field number.
//
// fn encodes the message into a scratch writer; the resulting bytes are then
// written with a length prefix.
func (w *Writer) WriteMessage(num FieldNumber, fn func(*Writer) error) {
	if w.err != nil {
		return
	}

	s := rentScratch()
	defer returnScratch(s)

	if err := fn(&s.writer); err != nil {
		w.err = err
		return
	}
	if err := s.writer.Flush(); err != nil {
		w.err = err
		return
	}

	w.WriteTag(num, Bytes)
	w.WriteBytes(s.sink.Bytes())
}

// writeRaw writes b without any framing, splitting it across as many windows
// as necessary.
func (w *Writer) writeRaw(b []byte) {
	for len(b) > 0 && w.err == nil {
		if len(w.win)-w.n == 0 {
			w.win, w.err = w.sink.Next(w.n, 1)
			w.n = 0
			continue
		}

		n := copy(w.win[w.n:], b)
		w.n += n
		b = b[n:]
	}
}

// Marshaler is implemented by types that can encode themselves to a [Writer].
type Marshaler interface {
	MarshalTo(*Writer) error
}

// Marshal encodes m to a new byte slice.
func Marshal(m Marshaler) ([]byte, error) {
	var sink BufferSink
	w := NewWriter(&sink)

	if err := m.MarshalTo(w); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	return slices.Clone(sink.Bytes()), nil
}

// scratch is a reusable writer/sink pair used to encode embedded messages
// before their length is known.
type scratch struct {
	sink   BufferSink
	writer Writer
}

var scratchPool = sync.Pool{
	New: func() any {
		return &scratch{}
	},
}

func rentScratch() *scratch {
	s := scratchPool.Get().(*scratch)
	s.sink.Reset()
	s.writer.Reset(&s.sink)
	return s
}

func returnScratch(s *scratch) {
	scratchPool.Put(s)
}
