package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateModule matches any *DuplicateModuleError via errors.Is.
	ErrDuplicateModule = errors.New("duplicate module")
	// ErrUnknownModule matches any *UnknownModuleError via errors.Is.
	ErrUnknownModule = errors.New("unknown module")
)

// DuplicateModuleError is returned when two manifests claim the same name.
type DuplicateModuleError struct {
	Name string
	// Existing and Duplicate are the source files of the two manifests, when known.
	Existing  string
	Duplicate string
}

func (e *DuplicateModuleError) Error() string {
	if e.Existing != "" || e.Duplicate != "" {
		return fmt.Sprintf("duplicate module %q: declared in %s and %s", e.Name, sourceOrUnknown(e.Existing), sourceOrUnknown(e.Duplicate))
	}
	return fmt.Sprintf("duplicate module %q", e.Name)
}

// Is makes errors.Is(err, ErrDuplicateModule) succeed.
func (e *DuplicateModuleError) Is(target error) bool {
	return target == ErrDuplicateModule
}

// UnknownModuleError is returned when a name has no registered manifest.
// Referrer is set when the name came from another module's dependency list.
type UnknownModuleError struct {
	Name     string
	Referrer string
}

func (e *UnknownModuleError) Error() string {
	if e.Referrer != "" {
		return fmt.Sprintf("module %q depends on unknown module %q", e.Referrer, e.Name)
	}
	return fmt.Sprintf("unknown module %q", e.Name)
}

// Is makes errors.Is(err, ErrUnknownModule) succeed.
func (e *UnknownModuleError) Is(target error) bool {
	return target == ErrUnknownModule
}

func sourceOrUnknown(s string) string {
	if s == "" {
		return "<unknown>"
	}
	return s
}
