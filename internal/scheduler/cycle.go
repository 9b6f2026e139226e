package scheduler

import "github.com/specialistvlad/modgraph/internal/dag"

type mark uint8

const (
	unvisited mark = iota
	inProgress
	done
)

// DetectCycles walks g depth-first and returns a *DependencyCycleError for the
// first loop it closes, or nil when g is acyclic.
func DetectCycles(g *dag.Graph) error {
	marks := make(map[string]mark, g.Len())
	var stack []string

	var visit func(name string) error
	visit = func(name string) error {
		switch marks[name] {
		case done:
			return nil
		case inProgress:
			return &DependencyCycleError{Path: cyclePath(stack, name)}
		}

		marks[name] = inProgress
		stack = append(stack, name)
		for _, dep := range g.Dependencies(name) {
			if err := visit(dep.Name); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		marks[name] = done
		return nil
	}

	for _, name := range g.Names() {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

// cyclePath cuts the walk stack at the first occurrence of the module that
// closed the loop and appends it again.
func cyclePath(stack []string, closing string) []string {
	start := 0
	for i, name := range stack {
		if name == closing {
			start = i
			break
		}
	}
	path := make([]string, 0, len(stack)-start+1)
	path = append(path, stack[start:]...)
	return append(path, closing)
}
