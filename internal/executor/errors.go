package executor

import (
	"errors"
	"fmt"
)

// ErrDependencyFailed is the cause recorded for modules skipped because a
// dependency did not complete.
var ErrDependencyFailed = errors.New("dependency did not complete")

// ModuleFailedError is returned by Execute when a compiler call failed.
type ModuleFailedError struct {
	Module string
	Err    error
}

func (e *ModuleFailedError) Error() string {
	return fmt.Sprintf("module %q failed to compile: %v", e.Module, e.Err)
}

func (e *ModuleFailedError) Unwrap() error {
	return e.Err
}
