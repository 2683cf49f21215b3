package schema

import (
	"fmt"
	"strings"
)

// MissingTypeError indicates that a field references a message or enum that
// is not present in the index.
//
// It is surfaced when the referencing type is emitted, not when the index is
// built, and fails only the one target that needs the missing type.
type MissingTypeError struct {
	// Field is the full name of the field that holds the dangling reference.
	Field string

	// TypeName is the referenced type name that could not be resolved.
	TypeName string
}

func (e MissingTypeError) Error() string {
	return fmt.Sprintf("field %s references unknown type %s", e.Field, e.TypeName)
}

// NotFoundError indicates that a user-supplied type name resolves to neither
// a message nor an enum.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no message or enum named %q", e.Name)
}

// AmbiguousTypeError indicates that a short type name matches more than one
// type across the indexed packages.
//
// Callers must disambiguate by supplying a full name.
type AmbiguousTypeError struct {
	Name    string
	Matches []FullName
}

func (e AmbiguousTypeError) Error() string {
	names := make([]string, len(e.Matches))
	for i, n := range e.Matches {
		names[i] = string(n)
	}

	return fmt.Sprintf(
		"%q is ambiguous, it matches %s",
		e.Name,
		strings.Join(names, ", "),
	)
}
