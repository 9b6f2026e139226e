package executor

import "github.com/specialistvlad/modgraph/internal/node"

// Outcome is the final state of one module.
type Outcome struct {
	Module string
	Status node.Status
	Output any
	Err    error
}

// Report lists every module's outcome in plan order.
type Report struct {
	Outcomes []Outcome
}

// Count returns how many modules ended in status s.
func (r *Report) Count(s node.Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Modules returns the names of modules that ended in status s, in plan order.
func (r *Report) Modules(s node.Status) []string {
	var out []string
	for _, o := range r.Outcomes {
		if o.Status == s {
			out = append(out, o.Module)
		}
	}
	return out
}

// Succeeded reports whether every module completed.
func (r *Report) Succeeded() bool {
	return r.Count(node.StatusCompleted) == len(r.Outcomes)
}
