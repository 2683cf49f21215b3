package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

func writeDescriptorSet(t *testing.T) string {
	t.Helper()

	optional := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	int64Kind := descriptorpb.FieldDescriptorProto_TYPE_INT64

	fds := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{
			{
				Name:    proto.String("market.proto"),
				Package: proto.String("market"),
				MessageType: []*descriptorpb.DescriptorProto{
					{
						Name: proto.String("Quotation"),
						Field: []*descriptorpb.FieldDescriptorProto{
							{
								Name:   proto.String("units"),
								Number: proto.Int32(1),
								Label:  &optional,
								Type:   &int64Kind,
							},
						},
					},
				},
			},
		},
	}

	data, err := proto.Marshal(fds)
	require.NoError(t, err)

	name := filepath.Join(t.TempDir(), "schema.bin")
	require.NoError(t, os.WriteFile(name, data, 0o644))

	return name
}

func TestGenerate(t *testing.T) {
	ds := writeDescriptorSet(t)
	out := t.TempDir()

	var stdout bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{
		"generate",
		"--descriptor-set", ds,
		"--out", out,
		"--package", "marketdata",
		"--report",
	})

	require.NoError(t, cmd.Execute())

	unit, err := os.ReadFile(filepath.Join(out, "market_Quotation.go"))
	require.NoError(t, err)
	require.Contains(t, string(unit), "package marketdata")
	require.Contains(t, string(unit), "func (x *Quotation) MarshalTo(w *wire.Writer) error {")

	require.Contains(t, stdout.String(), `".market.Quotation"`)
}

func TestGenerate_manifest(t *testing.T) {
	ds := writeDescriptorSet(t)
	out := t.TempDir()

	manifest := filepath.Join(t.TempDir(), "wirekit.toml")
	require.NoError(t, os.WriteFile(
		manifest,
		[]byte("descriptor_set = "+quoteTOML(ds)+"\noutput_dir = "+quoteTOML(out)+"\npackage_name = \"marketdata\"\n"),
		0o644,
	))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"generate", "--config", manifest})

	require.NoError(t, cmd.Execute())
	require.FileExists(t, filepath.Join(out, "market_Quotation.go"))
}

func TestGenerate_requiresDescriptorSet(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"generate"})

	require.Error(t, cmd.Execute())
}

// quoteTOML renders s as a TOML string literal.
func quoteTOML(s string) string {
	return `"` + s + `"`
}
