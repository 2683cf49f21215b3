package schema

import (
	"slices"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// A Target is a message or enum selected for generation.
//
// Exactly one of Message and Enum is non-nil.
type Target struct {
	Name    FullName
	Message *descriptorpb.DescriptorProto
	Enum    *descriptorpb.EnumDescriptorProto
}

// ListNames returns the full names of every message and enum in the index,
// sorted byte-wise.
//
// If one or more packages are given, only types declared in those packages
// are listed.
func (x *Index) ListNames(packages ...string) []FullName {
	var names []FullName

	for n := range x.messages {
		if x.inPackages(n, packages) {
			names = append(names, n)
		}
	}
	for n := range x.enums {
		if x.inPackages(n, packages) {
			names = append(names, n)
		}
	}

	slices.Sort(names)

	return names
}

// Resolve maps a user-supplied type name to exactly one message or enum.
//
// A full name matches directly, with or without its leading dot. A bare
// short name matches any type whose trailing name segment equals it; if it
// matches more than one type, Resolve fails with [AmbiguousTypeError] rather
// than picking one arbitrarily.
func (x *Index) Resolve(name string) (Target, error) {
	full := FullName(name)
	if !strings.HasPrefix(name, ".") {
		full = FullName("." + name)
	}

	if t, ok := x.target(full); ok {
		return t, nil
	}

	// Fall back to a short-name scan over the trailing segment of every
	// indexed name. The scan is over the sorted name list so that the
	// matches reported by an ambiguity error are deterministic.
	var matches []FullName
	for _, n := range x.ListNames() {
		if trailingSegment(n) == name {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return Target{}, NotFoundError{Name: name}
	case 1:
		t, _ := x.target(matches[0])
		return t, nil
	default:
		return Target{}, AmbiguousTypeError{Name: name, Matches: matches}
	}
}

func (x *Index) target(n FullName) (Target, bool) {
	if m, ok := x.messages[n]; ok {
		return Target{Name: n, Message: m}, true
	}
	if e, ok := x.enums[n]; ok {
		return Target{Name: n, Enum: e}, true
	}
	return Target{}, false
}

func (x *Index) inPackages(n FullName, packages []string) bool {
	if len(packages) == 0 {
		return true
	}

	f := x.files[n]
	return slices.Contains(packages, f.GetPackage())
}

func trailingSegment(n FullName) string {
	s := string(n)
	if i := strings.LastIndexByte(s, '.'); i != -1 {
		return s[i+1:]
	}
	return s
}
