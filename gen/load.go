package gen

import (
	"bytes"
	"io"

	"github.com/dogmatiq/wirekit/internal/errorx"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// gzipMagic is the two-byte header that begins every gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// LoadDescriptorSet reads a serialized FileDescriptorSet from the named
// file.
//
// A gzipped file, such as one produced by piping protoc's
// --descriptor_set_out through gzip, is decompressed transparently.
func LoadDescriptorSet(fs afero.Fs, name string) (_ *descriptorpb.FileDescriptorSet, err error) {
	defer errorx.Wrap(&err, "unable to load descriptor set from %s", name)

	data, err := afero.ReadFile(fs, name)
	if err != nil {
		return nil, err
	}

	if bytes.HasPrefix(data, gzipMagic) {
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}

		if data, err = io.ReadAll(r); err != nil {
			return nil, err
		}

		if err := r.Close(); err != nil {
			return nil, err
		}
	}

	fds := &descriptorpb.FileDescriptorSet{}
	if err := proto.Unmarshal(data, fds); err != nil {
		return nil, err
	}

	return fds, nil
}
