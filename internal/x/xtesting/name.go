package xtesting

import (
	"fmt"

	"github.com/google/uuid"
)

// UniqueName returns a unique name with the given prefix.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
