package scheduler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDependencyCycle matches any *DependencyCycleError via errors.Is.
var ErrDependencyCycle = errors.New("dependency cycle")

// DependencyCycleError reports a closed loop of dependencies. Path starts and
// ends with the same module and every consecutive pair is an edge.
type DependencyCycleError struct {
	Path []string
}

func (e *DependencyCycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Path, " -> "))
}

// Is makes errors.Is(err, ErrDependencyCycle) succeed.
func (e *DependencyCycleError) Is(target error) bool {
	return target == ErrDependencyCycle
}
