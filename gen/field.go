package gen

import (
	"strings"

	"github.com/dogmatiq/wirekit/schema"
	"github.com/dogmatiq/wirekit/wire"
	"google.golang.org/protobuf/types/descriptorpb"
)

// fieldPlan is the layout decision made for a single field of a message: the
// member it becomes, the Go type of that member, and how the field is framed
// on the wire.
type fieldPlan struct {
	// Name is the field's wire-format (snake case) name.
	Name string

	// Number is the field number used in wire tags.
	Number wire.FieldNumber

	// Member is the generated name of the struct member.
	Member string

	// Kind is the field's descriptor type.
	Kind descriptorpb.FieldDescriptorProto_Type

	// GoType is the Go type of a single element of the field.
	GoType string

	// TypeIdent is the generated identifier of the referenced message or
	// enum, when Kind is a message or enum kind.
	TypeIdent string

	// WireType is how a single element is framed on the wire.
	WireType wire.Type

	// Repeated is true for repeated fields, which become slices.
	Repeated bool

	// Skipped is true for fields this generator cannot represent. A skipped
	// field has no member and takes no part in reset, encode or decode.
	Skipped bool
}

// planFields derives the layout of every field of a message.
//
// Fields that belong to a real one-of group (as opposed to the synthetic
// group that backs a proto3 explicit-optional field) are planned as skipped
// rather than failing the whole message, so a partially supported schema
// still produces usable output for its supported fields.
func planFields(
	name schema.FullName,
	m *descriptorpb.DescriptorProto,
	x *schema.Index,
) ([]fieldPlan, error) {
	ident, _ := x.Identifier(name)

	plans := make([]fieldPlan, 0, len(m.GetField()))
	taken := map[string]bool{}

	for _, f := range m.GetField() {
		member := schema.FieldMemberName(ident, f.GetName())
		for taken[member] {
			member += "_"
		}
		taken[member] = true

		p := fieldPlan{
			Name:     f.GetName(),
			Number:   wire.FieldNumber(f.GetNumber()),
			Member:   member,
			Kind:     f.GetType(),
			Repeated: f.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED,
		}

		if f.OneofIndex != nil && !f.GetProto3Optional() {
			p.Skipped = true
			plans = append(plans, p)
			continue
		}

		switch f.GetType() {
		case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
			p.GoType, p.WireType = "bool", wire.Varint
		case descriptorpb.FieldDescriptorProto_TYPE_INT32,
			descriptorpb.FieldDescriptorProto_TYPE_SINT32:
			p.GoType, p.WireType = "int32", wire.Varint
		case descriptorpb.FieldDescriptorProto_TYPE_INT64,
			descriptorpb.FieldDescriptorProto_TYPE_SINT64:
			p.GoType, p.WireType = "int64", wire.Varint
		case descriptorpb.FieldDescriptorProto_TYPE_UINT32:
			p.GoType, p.WireType = "uint32", wire.Varint
		case descriptorpb.FieldDescriptorProto_TYPE_UINT64:
			p.GoType, p.WireType = "uint64", wire.Varint
		case descriptorpb.FieldDescriptorProto_TYPE_FIXED32:
			p.GoType, p.WireType = "uint32", wire.Fixed32
		case descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
			p.GoType, p.WireType = "int32", wire.Fixed32
		case descriptorpb.FieldDescriptorProto_TYPE_FIXED64:
			p.GoType, p.WireType = "uint64", wire.Fixed64
		case descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
			p.GoType, p.WireType = "int64", wire.Fixed64
		case descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
			p.GoType, p.WireType = "float32", wire.Fixed32
		case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
			p.GoType, p.WireType = "float64", wire.Fixed64
		case descriptorpb.FieldDescriptorProto_TYPE_STRING:
			p.GoType, p.WireType = "string", wire.Bytes
		case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
			p.GoType, p.WireType = "[]byte", wire.Bytes
		case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
			ref, err := resolveReference(name, f, x)
			if err != nil {
				return nil, err
			}
			if _, ok := x.Enum(ref); !ok {
				return nil, schema.MissingTypeError{
					Field:    string(name) + "." + f.GetName(),
					TypeName: f.GetTypeName(),
				}
			}
			id, _ := x.Identifier(ref)
			p.GoType, p.TypeIdent, p.WireType = id, id, wire.Varint
		case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
			ref, err := resolveReference(name, f, x)
			if err != nil {
				return nil, err
			}
			id, _ := x.Identifier(ref)
			p.GoType, p.TypeIdent, p.WireType = "*"+id, id, wire.Bytes
		default:
			// A category with no emission rule, such as the deprecated group
			// kind, degrades to a placeholder like an unsupported one-of
			// member does.
			p.Skipped = true
		}

		plans = append(plans, p)
	}

	return plans, nil
}

// resolveReference resolves a field's message or enum type reference against
// the index.
func resolveReference(
	name schema.FullName,
	f *descriptorpb.FieldDescriptorProto,
	x *schema.Index,
) (schema.FullName, error) {
	ref := f.GetTypeName()

	full := schema.FullName(ref)
	if !strings.HasPrefix(ref, ".") {
		full = schema.FullName("." + ref)
	}

	if _, ok := x.Identifier(full); !ok {
		return "", schema.MissingTypeError{
			Field:    string(name) + "." + f.GetName(),
			TypeName: ref,
		}
	}

	return full, nil
}

// isMessage returns true if p is a message-typed field.
func (p fieldPlan) isMessage() bool {
	return p.Kind == descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
}
