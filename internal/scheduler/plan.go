package scheduler

import "github.com/specialistvlad/modgraph/internal/dag"

// Plan is an ordered list of modules in which every module appears after all
// of its dependencies.
type Plan struct {
	graph     *dag.Graph
	modules   []string
	positions map[string]int
	layers    [][]string
}

func newPlan(g *dag.Graph, order []string) *Plan {
	p := &Plan{
		graph:     g,
		modules:   order,
		positions: make(map[string]int, len(order)),
	}
	depth := make(map[string]int, len(order))
	for i, name := range order {
		p.positions[name] = i

		d := 0
		for _, dep := range g.Dependencies(name) {
			if depth[dep.Name]+1 > d {
				d = depth[dep.Name] + 1
			}
		}
		depth[name] = d
		for len(p.layers) <= d {
			p.layers = append(p.layers, nil)
		}
		p.layers[d] = append(p.layers[d], name)
	}
	return p
}

// Graph returns the graph the plan was computed from.
func (p *Plan) Graph() *dag.Graph {
	return p.graph
}

// Modules returns the module names in build order.
func (p *Plan) Modules() []string {
	return append([]string(nil), p.modules...)
}

// Len returns the number of modules in the plan.
func (p *Plan) Len() int {
	return len(p.modules)
}

// Position returns the zero-based position of name in the plan.
func (p *Plan) Position(name string) (int, bool) {
	pos, ok := p.positions[name]
	return pos, ok
}

// Layers groups the plan into waves. Modules inside a layer keep plan order.
func (p *Plan) Layers() [][]string {
	out := make([][]string, len(p.layers))
	for i, l := range p.layers {
		out[i] = append([]string(nil), l...)
	}
	return out
}
