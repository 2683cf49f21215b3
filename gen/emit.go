package gen

import (
	"fmt"
	"strings"

	"github.com/dogmatiq/wirekit/schema"
)

// runtimeModule is the import path under which the generated code expects to
// find the pool and wire packages.
const runtimeModule = "github.com/dogmatiq/wirekit"

// Emit renders the Go source of the unit generated for t.
//
// The result is a complete, self-contained file: one message or enum per
// unit, declared in the package named pkg. Emission is pure; rendering the
// same target against the same index always produces identical bytes.
func Emit(t schema.Target, x *schema.Index, pkg string) (string, error) {
	src, _, err := emit(t, x, pkg)
	return src, err
}

// emit renders a unit and additionally reports the number of fields that were
// degraded to placeholders because their shape is unsupported.
func emit(t schema.Target, x *schema.Index, pkg string) (string, int, error) {
	if t.Enum != nil {
		src, err := emitEnum(t, x, pkg)
		return src, 0, err
	}
	return emitMessage(t, x, pkg)
}

func emitEnum(t schema.Target, x *schema.Index, pkg string) (string, error) {
	ident, ok := x.Identifier(t.Name)
	if !ok {
		return "", schema.NotFoundError{Name: string(t.Name)}
	}

	var w strings.Builder
	header(&w, t.Name, pkg)

	fmt.Fprintf(&w, "// %s is the generated form of the %s enum.\n", ident, t.Name)
	fmt.Fprintf(&w, "type %s int32\n", ident)

	if len(t.Enum.GetValue()) != 0 {
		names := make([]string, 0, len(t.Enum.GetValue()))
		taken := map[string]bool{}
		width := 0

		for _, v := range t.Enum.GetValue() {
			n := constName(ident, schema.EnumMemberName(ident, v.GetName(), v.GetNumber()))
			for taken[n] {
				n += "_"
			}
			taken[n] = true

			names = append(names, n)
			width = max(width, len(n))
		}

		fmt.Fprintf(&w, "\n// Values of [%s].\nconst (\n", ident)
		for i, v := range t.Enum.GetValue() {
			fmt.Fprintf(
				&w,
				"\t%-*s %s = %d\n",
				width, names[i],
				ident,
				v.GetNumber(),
			)
		}
		w.WriteString(")\n")
	}

	return w.String(), nil
}

// constName joins an enum's identifier to one of its member names.
func constName(ident, member string) string {
	if strings.HasPrefix(member, "_") {
		return ident + member
	}
	return ident + "_" + member
}

func emitMessage(t schema.Target, x *schema.Index, pkg string) (string, int, error) {
	ident, ok := x.Identifier(t.Name)
	if !ok {
		return "", 0, schema.NotFoundError{Name: string(t.Name)}
	}

	fields, err := planFields(t.Name, t.Message, x)
	if err != nil {
		return "", 0, err
	}

	skipped := 0
	for _, f := range fields {
		if f.Skipped {
			skipped++
		}
	}

	var w strings.Builder
	header(&w, t.Name, pkg)

	fmt.Fprintf(
		&w,
		"import (\n\t%q\n\t%q\n)\n\n",
		runtimeModule+"/pool",
		runtimeModule+"/wire",
	)

	emitStruct(&w, ident, t.Name, fields)
	emitConstructor(&w, ident, fields)
	emitRentReturn(&w, ident)
	emitReset(&w, ident, fields)
	emitMarshal(&w, ident, fields)
	emitUnmarshal(&w, ident, fields)

	return w.String(), skipped, nil
}

func header(w *strings.Builder, name schema.FullName, pkg string) {
	fmt.Fprintf(
		w,
		"// Code generated by wirekit. DO NOT EDIT.\n//\n// Source: %s\n\npackage %s\n\n",
		name,
		pkg,
	)
}

func emitStruct(
	w *strings.Builder,
	ident string,
	name schema.FullName,
	fields []fieldPlan,
) {
	fmt.Fprintf(w, "// %s is the generated form of the %s message.\n", ident, name)
	fmt.Fprintf(w, "//\n// Instances should be obtained from a [pool.Registry] via [Rent%s] and\n// released with [Return%s].\n", ident, ident)
	fmt.Fprintf(w, "type %s struct {\n\tpool.State\n", ident)

	var members, skipped []fieldPlan
	for _, f := range fields {
		if f.Skipped {
			skipped = append(skipped, f)
		} else {
			members = append(members, f)
		}
	}

	if len(members) != 0 {
		width := 0
		for _, f := range members {
			width = max(width, len(f.Member))
		}

		w.WriteString("\n")
		for _, f := range members {
			fmt.Fprintf(w, "\t%-*s %s\n", width, f.Member, memberType(f))
		}
	}

	for _, f := range skipped {
		fmt.Fprintf(
			w,
			"\n\t// The field %q is a member of a one-of group, which is not\n\t// supported; it has no generated form.\n",
			f.Name,
		)
	}

	w.WriteString("}\n\n")
}

func memberType(f fieldPlan) string {
	if f.Repeated {
		return "[]" + f.GoType
	}
	return f.GoType
}

func emitConstructor(w *strings.Builder, ident string, fields []fieldPlan) {
	fmt.Fprintf(
		w,
		"// New%s returns a new [%s] with every field set to its default\n// value.\nfunc New%s() *%s {\n",
		ident, ident, ident, ident,
	)

	// Singular message fields default to an instance of the referenced
	// message, never to nil.
	var msgs []fieldPlan
	for _, f := range fields {
		if !f.Skipped && !f.Repeated && f.isMessage() {
			msgs = append(msgs, f)
		}
	}

	if len(msgs) == 0 {
		fmt.Fprintf(w, "\treturn &%s{}\n}\n\n", ident)
		return
	}

	width := 0
	for _, f := range msgs {
		width = max(width, len(f.Member)+1)
	}

	fmt.Fprintf(w, "\treturn &%s{\n", ident)
	for _, f := range msgs {
		fmt.Fprintf(w, "\t\t%-*s New%s(),\n", width, f.Member+":", f.TypeIdent)
	}
	w.WriteString("\t}\n}\n\n")
}

func emitRentReturn(w *strings.Builder, ident string) {
	fmt.Fprintf(
		w,
		"// Rent%s rents a [%s] from the pool that reg maintains for the type,\n// fabricating a new instance if the pool is empty.\nfunc Rent%s(reg *pool.Registry) *%s {\n\treturn pool.For(reg, New%s).Rent()\n}\n\n",
		ident, ident, ident, ident, ident,
	)
	fmt.Fprintf(
		w,
		"// Return%s resets x and makes it available to rent again.\nfunc Return%s(reg *pool.Registry, x *%s) {\n\tpool.For(reg, New%s).Return(x)\n}\n\n",
		ident, ident, ident, ident,
	)
}

func emitReset(w *strings.Builder, ident string, fields []fieldPlan) {
	hasRepeatedMessage := false
	hasBody := false
	for _, f := range fields {
		if f.Skipped {
			continue
		}
		hasBody = true
		if f.Repeated && f.isMessage() {
			hasRepeatedMessage = true
		}
	}

	w.WriteString("// Reset restores x to its default state.\n")
	if hasRepeatedMessage {
		w.WriteString("//\n// Message-typed elements of repeated fields are returned to their pools.\n")
	}

	if !hasBody {
		fmt.Fprintf(w, "func (x *%s) Reset() {}\n\n", ident)
		return
	}

	fmt.Fprintf(w, "func (x *%s) Reset() {\n", ident)

	if hasRepeatedMessage {
		w.WriteString("\treg := x.PoolState().Registry()\n\n")
	}

	for _, f := range fields {
		if f.Skipped {
			continue
		}

		switch {
		case f.Repeated && f.isMessage():
			fmt.Fprintf(
				w,
				"\tfor i, e := range x.%s {\n\t\tif reg != nil {\n\t\t\tReturn%s(reg, e)\n\t\t}\n\t\tx.%s[i] = nil\n\t}\n\tx.%s = x.%s[:0]\n",
				f.Member, f.TypeIdent, f.Member, f.Member, f.Member,
			)
		case f.Repeated || f.GoType == "[]byte":
			fmt.Fprintf(w, "\tx.%s = x.%s[:0]\n", f.Member, f.Member)
		case f.isMessage():
			fmt.Fprintf(w, "\tx.%s.Reset()\n", f.Member)
		case f.GoType == "string":
			fmt.Fprintf(w, "\tx.%s = \"\"\n", f.Member)
		case f.GoType == "bool":
			fmt.Fprintf(w, "\tx.%s = false\n", f.Member)
		default:
			fmt.Fprintf(w, "\tx.%s = 0\n", f.Member)
		}
	}

	w.WriteString("}\n\n")
}

func emitMarshal(w *strings.Builder, ident string, fields []fieldPlan) {
	w.WriteString("// MarshalTo writes x to w in wire format.\n//\n// Singular fields equal to their default value are omitted; message-typed\n// fields are always written.\n")
	fmt.Fprintf(w, "func (x *%s) MarshalTo(w *wire.Writer) error {\n", ident)

	wrote := false
	for _, f := range fields {
		if f.Skipped {
			continue
		}
		wrote = true

		if f.Repeated {
			fmt.Fprintf(w, "\tfor _, e := range x.%s {\n", f.Member)
			if f.isMessage() {
				fmt.Fprintf(w, "\t\tw.WriteMessage(%d, e.MarshalTo)\n", f.Number)
			} else {
				emitWriteElement(w, f, "e", "\t\t")
			}
			w.WriteString("\t}\n")
			continue
		}

		if f.isMessage() {
			fmt.Fprintf(w, "\tw.WriteMessage(%d, x.%s.MarshalTo)\n", f.Number, f.Member)
			continue
		}

		fmt.Fprintf(w, "\tif %s {\n", presenceExpr(f))
		emitWriteElement(w, f, "x."+f.Member, "\t\t")
		w.WriteString("\t}\n")
	}

	if wrote {
		w.WriteString("\n")
	}
	w.WriteString("\treturn w.Err()\n}\n\n")
}

// presenceExpr is the condition under which a singular scalar field is
// written at all.
func presenceExpr(f fieldPlan) string {
	switch f.GoType {
	case "bool":
		return "x." + f.Member
	case "string":
		return "x." + f.Member + ` != ""`
	case "[]byte":
		return "len(x." + f.Member + ") != 0"
	default:
		return "x." + f.Member + " != 0"
	}
}

// emitWriteElement writes the tag and value of a single element, already
// known to be present.
func emitWriteElement(w *strings.Builder, f fieldPlan, expr, indent string) {
	fmt.Fprintf(w, "%sw.WriteTag(%d, wire.%s)\n", indent, f.Number, wireTypeName(f))

	switch {
	case f.GoType == "bool":
		fmt.Fprintf(
			w,
			"%sif %s {\n%s\tw.WriteVarint(1)\n%s} else {\n%s\tw.WriteVarint(0)\n%s}\n",
			indent, expr, indent, indent, indent, indent,
		)
	case f.GoType == "string":
		fmt.Fprintf(w, "%sw.WriteString(%s)\n", indent, expr)
	case f.GoType == "[]byte":
		fmt.Fprintf(w, "%sw.WriteBytes(%s)\n", indent, expr)
	case f.GoType == "float32":
		fmt.Fprintf(w, "%sw.WriteFloat32(%s)\n", indent, expr)
	case f.GoType == "float64":
		fmt.Fprintf(w, "%sw.WriteFloat64(%s)\n", indent, expr)
	default:
		switch wireTypeName(f) {
		case "Fixed32":
			fmt.Fprintf(w, "%sw.WriteFixed32(uint32(%s))\n", indent, expr)
		case "Fixed64":
			fmt.Fprintf(w, "%sw.WriteFixed64(uint64(%s))\n", indent, expr)
		default:
			fmt.Fprintf(w, "%sw.WriteVarint(uint64(%s))\n", indent, expr)
		}
	}
}

func wireTypeName(f fieldPlan) string {
	switch f.WireType {
	case 0:
		return "Varint"
	case 1:
		return "Fixed64"
	case 5:
		return "Fixed32"
	default:
		return "Bytes"
	}
}

func emitUnmarshal(w *strings.Builder, ident string, fields []fieldPlan) {
	hasRepeatedMessage := false
	for _, f := range fields {
		if !f.Skipped && f.Repeated && f.isMessage() {
			hasRepeatedMessage = true
		}
	}

	w.WriteString("// UnmarshalFrom replaces the content of x with data read from r.\n")
	if hasRepeatedMessage {
		w.WriteString("//\n// Message-typed elements of repeated fields are rented from reg.\n")
	}
	fmt.Fprintf(w, "func (x *%s) UnmarshalFrom(r *wire.Reader, reg *pool.Registry) error {\n", ident)
	w.WriteString("\tfor {\n\t\tnum, typ, err := r.ReadTag()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\tif num == 0 {\n\t\t\treturn nil\n\t\t}\n\n\t\tswitch num {\n")

	for _, f := range fields {
		if f.Skipped {
			continue
		}

		fmt.Fprintf(w, "\t\tcase %d:\n", f.Number)
		emitReadField(w, f)
	}

	w.WriteString("\t\tdefault:\n\t\t\tif err := r.Skip(typ); err != nil {\n\t\t\t\treturn err\n\t\t\t}\n\t\t}\n\t}\n}\n")
}

func emitReadField(w *strings.Builder, f fieldPlan) {
	const indent = "\t\t\t"

	if f.isMessage() {
		fmt.Fprintf(w, "%ssr, err := r.ReadMessage()\n%sif err != nil {\n%s\treturn err\n%s}\n", indent, indent, indent, indent)

		if f.Repeated {
			fmt.Fprintf(w, "%se := Rent%s(reg)\n", indent, f.TypeIdent)
			fmt.Fprintf(w, "%sif err := e.UnmarshalFrom(&sr, reg); err != nil {\n%s\treturn err\n%s}\n", indent, indent, indent)
			fmt.Fprintf(w, "%sx.%s = append(x.%s, e)\n", indent, f.Member, f.Member)
		} else {
			fmt.Fprintf(w, "%sif err := x.%s.UnmarshalFrom(&sr, reg); err != nil {\n%s\treturn err\n%s}\n", indent, f.Member, indent, indent)
		}
		return
	}

	read := "ReadVarint"
	switch {
	case f.GoType == "string":
		read = "ReadString"
	case f.GoType == "[]byte":
		read = "ReadBytes"
	case f.GoType == "float32":
		read = "ReadFloat32"
	case f.GoType == "float64":
		read = "ReadFloat64"
	case f.WireType == 5:
		read = "ReadFixed32"
	case f.WireType == 1:
		read = "ReadFixed64"
	}

	fmt.Fprintf(w, "%sv, err := r.%s()\n%sif err != nil {\n%s\treturn err\n%s}\n", indent, read, indent, indent, indent)

	expr := "v"
	switch {
	case f.GoType == "bool":
		expr = "v != 0"
	case f.GoType == "string", f.GoType == "[]byte",
		f.GoType == "float32", f.GoType == "float64":
		// The reader already yields the member type.
	case f.WireType == 5 && f.GoType != "uint32":
		expr = f.GoType + "(v)"
	case f.WireType == 1 && f.GoType != "uint64":
		expr = f.GoType + "(v)"
	case f.WireType == 0 && f.GoType != "uint64":
		expr = f.GoType + "(v)"
	}

	if f.Repeated {
		fmt.Fprintf(w, "%sx.%s = append(x.%s, %s)\n", indent, f.Member, f.Member, expr)
	} else {
		fmt.Fprintf(w, "%sx.%s = %s\n", indent, f.Member, expr)
	}
}
