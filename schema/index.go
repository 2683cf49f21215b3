// Package schema builds a cross-reference over a protocol-buffers descriptor
// set.
//
// An [Index] maps the canonical full name of every message and enum in the
// set to its descriptor, its owning file, and the collision-free identifier
// it is given in generated code. The index is built once and is read-only
// thereafter.
package schema

import (
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// FullName is the canonical, dot-joined, package-qualified name of a message
// or enum, with a leading dot.
//
// It is unique across a descriptor set and is the primary key of all index
// lookups.
type FullName string

// Index is a cross-reference over one descriptor set.
type Index struct {
	messages map[FullName]*descriptorpb.DescriptorProto
	enums    map[FullName]*descriptorpb.EnumDescriptorProto
	files    map[FullName]*descriptorpb.FileDescriptorProto
	idents   map[FullName]string
}

// NewIndex builds an index over the given descriptor set.
//
// It records whatever the set contains; dangling type references are only
// detected later, when a lookup fails.
func NewIndex(fds *descriptorpb.FileDescriptorSet) *Index {
	x := &Index{
		messages: map[FullName]*descriptorpb.DescriptorProto{},
		enums:    map[FullName]*descriptorpb.EnumDescriptorProto{},
		files:    map[FullName]*descriptorpb.FileDescriptorProto{},
		idents:   map[FullName]string{},
	}

	type frame struct {
		message *descriptorpb.DescriptorProto
		name    FullName
	}

	for _, f := range fds.GetFile() {
		pkg := f.GetPackage()

		prefix := FullName(".")
		if pkg != "" {
			prefix = FullName("." + pkg + ".")
		}

		for _, e := range f.GetEnumType() {
			n := prefix + FullName(e.GetName())
			x.enums[n] = e
			x.files[n] = f
			x.idents[n] = identifier(n, pkg)
		}

		// Messages nest arbitrarily deeply; walk them with an explicit stack
		// rather than recursing.
		var stack []frame
		for _, m := range f.GetMessageType() {
			stack = append(stack, frame{m, prefix + FullName(m.GetName())})
		}

		for len(stack) > 0 {
			fr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			x.messages[fr.name] = fr.message
			x.files[fr.name] = f
			x.idents[fr.name] = identifier(fr.name, pkg)

			for _, e := range fr.message.GetEnumType() {
				n := fr.name + "." + FullName(e.GetName())
				x.enums[n] = e
				x.files[n] = f
				x.idents[n] = identifier(n, pkg)
			}

			for _, m := range fr.message.GetNestedType() {
				stack = append(stack, frame{m, fr.name + "." + FullName(m.GetName())})
			}
		}
	}

	return x
}

// Message returns the descriptor of the message with the given full name.
func (x *Index) Message(n FullName) (*descriptorpb.DescriptorProto, bool) {
	m, ok := x.messages[n]
	return m, ok
}

// Enum returns the descriptor of the enum with the given full name.
func (x *Index) Enum(n FullName) (*descriptorpb.EnumDescriptorProto, bool) {
	e, ok := x.enums[n]
	return e, ok
}

// File returns the file that declares the type with the given full name.
func (x *Index) File(n FullName) (*descriptorpb.FileDescriptorProto, bool) {
	f, ok := x.files[n]
	return f, ok
}

// Identifier returns the identifier used for the given type in generated
// code.
//
// Identifiers are computed once, when the index is built, so a type is named
// identically no matter how many fields reference it or which subset of
// types is generated.
func (x *Index) Identifier(n FullName) (string, bool) {
	id, ok := x.idents[n]
	return id, ok
}

// identifier derives the generated identifier for the type with the given
// full name, declared in the given package.
//
// The package prefix is stripped and the remaining nesting separators become
// underscores, so nested types never collide with unrelated top-level types
// that share a short name.
func identifier(n FullName, pkg string) string {
	s := strings.TrimPrefix(string(n), ".")
	if pkg != "" {
		s = strings.TrimPrefix(s, pkg+".")
	}
	return strings.ReplaceAll(s, ".", "_")
}
