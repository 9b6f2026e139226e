package dag

import (
	"errors"
	"fmt"
)

// ErrConflictingVisibility matches any *ConflictingVisibilityError via errors.Is.
var ErrConflictingVisibility = errors.New("conflicting dependency visibility")

// ConflictingVisibilityError is returned in strict mode when a module lists
// the same dependency as both public and private.
type ConflictingVisibilityError struct {
	Module     string
	Dependency string
}

func (e *ConflictingVisibilityError) Error() string {
	return fmt.Sprintf("module %q lists %q as both a public and a private dependency", e.Module, e.Dependency)
}

// Is makes errors.Is(err, ErrConflictingVisibility) succeed.
func (e *ConflictingVisibilityError) Is(target error) bool {
	return target == ErrConflictingVisibility
}
