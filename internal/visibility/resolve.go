package visibility

import (
	"sort"

	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/manifest"
	"github.com/specialistvlad/modgraph/internal/registry"
)

// Set is one module's Effective Visibility Set.
type Set struct {
	Module string
	// Modules is ordered by registration index.
	Modules []string
}

// Contains reports whether name is visible to the module.
func (s Set) Contains(name string) bool {
	for _, m := range s.Modules {
		if m == name {
			return true
		}
	}
	return false
}

// Resolve computes the visibility set of name in g without caching. It fails
// with *registry.UnknownModuleError if name is not in the graph.
func Resolve(g *dag.Graph, name string) (Set, error) {
	if !g.Has(name) {
		return Set{}, &registry.UnknownModuleError{Name: name}
	}

	visible := make(map[string]struct{})
	var queue []string

	// Phase one: direct dependencies, both visibilities.
	for _, dep := range g.Dependencies(name) {
		if _, ok := visible[dep.Name]; ok {
			continue
		}
		visible[dep.Name] = struct{}{}
		queue = append(queue, dep.Name)
	}

	// Phase two: public edges only, transitively.
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dep := range g.Dependencies(cur) {
			if dep.Visibility != manifest.Public {
				continue
			}
			if _, ok := visible[dep.Name]; ok {
				continue
			}
			visible[dep.Name] = struct{}{}
			queue = append(queue, dep.Name)
		}
	}
	delete(visible, name)

	out := make([]string, 0, len(visible))
	for m := range visible {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := g.Index(out[i])
		b, _ := g.Index(out[j])
		return a < b
	})
	return Set{Module: name, Modules: out}, nil
}
