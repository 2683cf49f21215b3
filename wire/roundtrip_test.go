package wire_test

import (
	"bytes"
	"testing"

	. "github.com/dogmatiq/wirekit/wire"
	"pgregory.net/rapid"
)

// encode runs fn against a writer backed by an in-memory sink and returns the
// committed bytes.
func encode(t rapid.TB, fn func(*Writer)) []byte {
	var sink BufferSink
	w := NewWriter(&sink)

	fn(w)

	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	return sink.Bytes()
}

func TestVarint(t *testing.T) {
	t.Parallel()

	t.Run("round-trips any 64-bit value", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(t *rapid.T) {
			want := rapid.Uint64().Draw(t, "value")

			data := encode(t, func(w *Writer) {
				w.WriteVarint(want)
			})

			got, err := NewReader(data).ReadVarint()
			if err != nil {
				t.Fatal(err)
			}

			if got != want {
				t.Fatalf("unexpected value: got %d, want %d", got, want)
			}
		})
	})

	t.Run("uses the minimal encoding length", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			Value uint64
			Len   int
		}{
			{0, 1},
			{1, 1},
			{0x7f, 1},
			{0x80, 2},
			{0x3fff, 2},
			{0x4000, 3},
			{1<<63 - 1, 9},
			{1 << 63, 10},
			{^uint64(0), 10},
		}

		for _, c := range cases {
			data := encode(t, func(w *Writer) {
				w.WriteVarint(c.Value)
			})

			if len(data) != c.Len {
				t.Fatalf("unexpected encoding length for %d: got %d, want %d", c.Value, len(data), c.Len)
			}
		}
	})

	t.Run("fails when the input is truncated", func(t *testing.T) {
		t.Parallel()

		if _, err := NewReader([]byte{0x80}).ReadVarint(); err != ErrTruncated {
			t.Fatalf("unexpected error: got %v, want %v", err, ErrTruncated)
		}
	})

	t.Run("fails when the encoding exceeds 10 bytes", func(t *testing.T) {
		t.Parallel()

		data := bytes.Repeat([]byte{0x80}, 11)
		if _, err := NewReader(data).ReadVarint(); err != ErrOverflow {
			t.Fatalf("unexpected error: got %v, want %v", err, ErrOverflow)
		}
	})
}

func TestTag(t *testing.T) {
	t.Parallel()

	t.Run("round-trips the field number and wire type", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(t *rapid.T) {
			wantNum := FieldNumber(rapid.Uint32Range(1, 1<<29-1).Draw(t, "num"))
			wantType := rapid.SampledFrom([]Type{Varint, Fixed64, Bytes, Fixed32}).Draw(t, "type")

			data := encode(t, func(w *Writer) {
				w.WriteTag(wantNum, wantType)
			})

			gotNum, gotType, err := NewReader(data).ReadTag()
			if err != nil {
				t.Fatal(err)
			}

			if gotNum != wantNum || gotType != wantType {
				t.Fatalf(
					"unexpected tag: got (%d, %d), want (%d, %d)",
					gotNum, gotType,
					wantNum, wantType,
				)
			}
		})
	})

	t.Run("reports the end of input as field number zero", func(t *testing.T) {
		t.Parallel()

		num, _, err := NewReader(nil).ReadTag()
		if err != nil {
			t.Fatal(err)
		}
		if num != 0 {
			t.Fatalf("unexpected field number: got %d, want 0", num)
		}
	})
}

func TestFixed(t *testing.T) {
	t.Parallel()

	t.Run("round-trips 32-bit values", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(t *rapid.T) {
			want := rapid.Uint32().Draw(t, "value")

			data := encode(t, func(w *Writer) {
				w.WriteFixed32(want)
			})

			if len(data) != 4 {
				t.Fatalf("unexpected encoding length: got %d, want 4", len(data))
			}

			got, err := NewReader(data).ReadFixed32()
			if err != nil {
				t.Fatal(err)
			}

			if got != want {
				t.Fatalf("unexpected value: got %d, want %d", got, want)
			}
		})
	})

	t.Run("round-trips 64-bit values", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(t *rapid.T) {
			want := rapid.Uint64().Draw(t, "value")

			data := encode(t, func(w *Writer) {
				w.WriteFixed64(want)
			})

			if len(data) != 8 {
				t.Fatalf("unexpected encoding length: got %d, want 8", len(data))
			}

			got, err := NewReader(data).ReadFixed64()
			if err != nil {
				t.Fatal(err)
			}

			if got != want {
				t.Fatalf("unexpected value: got %d, want %d", got, want)
			}
		})
	})

	t.Run("encodes in little-endian byte order", func(t *testing.T) {
		t.Parallel()

		data := encode(t, func(w *Writer) {
			w.WriteFixed32(0x01020304)
		})

		want := []byte{0x04, 0x03, 0x02, 0x01}
		if !bytes.Equal(data, want) {
			t.Fatalf("unexpected encoding: got %x, want %x", data, want)
		}
	})

	t.Run("fails when the input is truncated", func(t *testing.T) {
		t.Parallel()

		if _, err := NewReader([]byte{1, 2, 3}).ReadFixed32(); err != ErrTruncated {
			t.Fatalf("unexpected error: got %v, want %v", err, ErrTruncated)
		}

		if _, err := NewReader([]byte{1, 2, 3, 4, 5, 6, 7}).ReadFixed64(); err != ErrTruncated {
			t.Fatalf("unexpected error: got %v, want %v", err, ErrTruncated)
		}
	})
}

func TestBytes(t *testing.T) {
	t.Parallel()

	t.Run("round-trips arbitrary data", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(t *rapid.T) {
			want := rapid.SliceOf(rapid.Byte()).Draw(t, "value")

			data := encode(t, func(w *Writer) {
				w.WriteBytes(want)
			})

			got, err := NewReader(data).ReadBytes()
			if err != nil {
				t.Fatal(err)
			}

			if !bytes.Equal(got, want) {
				t.Fatalf("unexpected value: got %x, want %x", got, want)
			}
		})
	})

	t.Run("round-trips strings without loss", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(t *rapid.T) {
			want := rapid.String().Draw(t, "value")

			data := encode(t, func(w *Writer) {
				w.WriteString(want)
			})

			got, err := NewReader(data).ReadString()
			if err != nil {
				t.Fatal(err)
			}

			if got != want {
				t.Fatalf("unexpected value: got %q, want %q", got, want)
			}
		})
	})

	t.Run("rejects text that is not valid UTF-8", func(t *testing.T) {
		t.Parallel()

		data := encode(t, func(w *Writer) {
			w.WriteBytes([]byte{0xff, 0xfe})
		})

		if _, err := NewReader(data).ReadString(); err != ErrInvalidUTF8 {
			t.Fatalf("unexpected error: got %v, want %v", err, ErrInvalidUTF8)
		}
	})

	t.Run("fails when the length prefix exceeds the input", func(t *testing.T) {
		t.Parallel()

		// A length prefix of 5 followed by only 2 bytes.
		data := []byte{5, 'h', 'i'}

		if _, err := NewReader(data).ReadBytes(); err != ErrTruncated {
			t.Fatalf("unexpected error: got %v, want %v", err, ErrTruncated)
		}
	})
}

func TestSkip(t *testing.T) {
	t.Parallel()

	t.Run("skips values of every supported wire type", func(t *testing.T) {
		t.Parallel()

		data := encode(t, func(w *Writer) {
			w.WriteTag(1, Varint)
			w.WriteVarint(1 << 40)
			w.WriteTag(2, Fixed32)
			w.WriteFixed32(42)
			w.WriteTag(3, Fixed64)
			w.WriteFixed64(42)
			w.WriteTag(4, Bytes)
			w.WriteBytes([]byte("skipped"))
			w.WriteTag(5, Varint)
			w.WriteVarint(7)
		})

		r := NewReader(data)

		for {
			num, typ, err := r.ReadTag()
			if err != nil {
				t.Fatal(err)
			}
			if num == 0 {
				t.Fatal("reached end of input without finding field 5")
			}

			if num == 5 {
				got, err := r.ReadVarint()
				if err != nil {
					t.Fatal(err)
				}
				if got != 7 {
					t.Fatalf("unexpected value: got %d, want 7", got)
				}
				return
			}

			if err := r.Skip(typ); err != nil {
				t.Fatal(err)
			}
		}
	})

	t.Run("rejects the deprecated group wire types", func(t *testing.T) {
		t.Parallel()

		err := NewReader([]byte{1}).Skip(3)
		if _, ok := err.(UnsupportedTypeError); !ok {
			t.Fatalf("unexpected error: got %v, want UnsupportedTypeError", err)
		}
	})
}
