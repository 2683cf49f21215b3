package schema

import (
	"fmt"
	"strings"

	"github.com/serenize/snaker"
)

// EnumMemberName derives the generated identifier of an enum member from the
// wire-format name of the value.
//
// Descriptor sets produced by the reference compiler conventionally prefix
// every value with the screaming-snake-case form of the enum's own name
// (CANDLE_INTERVAL_1_MIN in an enum named CandleInterval). That implied
// prefix is stripped when present, and the remainder is converted to
// capitalized-per-word form. A remainder that is empty falls back to
// Value<N> where N is the numeric wire value, a remainder that starts with a
// digit is prefixed with an underscore, and a remainder that collides with
// the enum's own identifier gains a trailing underscore.
func EnumMemberName(enumIdent, valueName string, number int32) string {
	prefix := screamingSnake(enumIdent)

	// The prefix only counts when it covers whole words: CANDLE_INTERVALS is
	// not prefixed by CANDLE_INTERVAL.
	s := valueName
	switch {
	case s == prefix:
		s = ""
	case strings.HasPrefix(s, prefix+"_"):
		s = s[len(prefix)+1:]
	}

	name := capitalizeWords(s)

	if name == "" {
		name = fmt.Sprintf("Value%d", number)
	}

	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}

	if name == enumIdent {
		name += "_"
	}

	return name
}

// FieldMemberName derives the generated identifier of a message field from
// its wire-format (snake case) name.
//
// A name that collides with the message's own identifier gains a trailing
// underscore; a member may never be named exactly like its containing type.
func FieldMemberName(messageIdent, fieldName string) string {
	name := snaker.SnakeToCamel(fieldName)

	if name == messageIdent {
		name += "_"
	}

	return name
}

// screamingSnake converts an identifier such as CandleInterval to
// CANDLE_INTERVAL: an underscore is inserted before each internal uppercase
// letter that follows a lowercase letter or digit, then everything is
// uppercased.
func screamingSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c >= 'A' && c <= 'Z' && i > 0 {
			prev := s[i-1]
			if (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9') {
				b.WriteByte('_')
			}
		}

		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}

	return b.String()
}

// capitalizeWords converts an underscore-separated name such as 1_MIN or
// UNSPECIFIED to capitalized-per-word form (1Min, Unspecified).
func capitalizeWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, w := range strings.Split(s, "_") {
		if w == "" {
			continue
		}

		for i := 0; i < len(w); i++ {
			c := w[i]
			if i == 0 {
				if c >= 'a' && c <= 'z' {
					c -= 'a' - 'A'
				}
			} else {
				if c >= 'A' && c <= 'Z' {
					c += 'a' - 'A'
				}
			}
			b.WriteByte(c)
		}
	}

	return b.String()
}
