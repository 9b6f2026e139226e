package manifest

import "fmt"

// ValidationError reports a manifest that violates its own invariants.
type ValidationError struct {
	Module string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Module == "" {
		return fmt.Sprintf("invalid manifest: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid manifest for module %q: %s: %s", e.Module, e.Field, e.Reason)
}
