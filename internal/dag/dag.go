package dag

import (
	"github.com/samber/lo"
	"github.com/specialistvlad/modgraph/internal/manifest"
)

func newGraph(env BuildEnvironment, capacity int) *Graph {
	return &Graph{
		env:   env,
		nodes: make(map[string]*node, capacity),
		order: make([]*node, 0, capacity),
	}
}

func (g *Graph) addNode(m *manifest.Manifest) *node {
	n := &node{manifest: m, index: len(g.order)}
	g.nodes[m.Name] = n
	g.order = append(g.order, n)
	return n
}

// addEdge records that from depends on to. Both nodes must exist.
func (g *Graph) addEdge(from, to *node, vis manifest.Visibility) {
	from.deps = append(from.deps, Dependency{Name: to.manifest.Name, Visibility: vis})
	to.dependents = append(to.dependents, from.manifest.Name)
}

// Environment returns the build environment the graph was built for.
func (g *Graph) Environment() BuildEnvironment {
	return g.env
}

// Len returns the number of modules.
func (g *Graph) Len() int {
	return len(g.order)
}

// Has reports whether name is a module of the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Module returns the manifest of name.
func (g *Graph) Module(name string) (*manifest.Manifest, bool) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, false
	}
	return n.manifest, true
}

// Modules returns all manifests in registration order.
func (g *Graph) Modules() []*manifest.Manifest {
	return lo.Map(g.order, func(n *node, _ int) *manifest.Manifest { return n.manifest })
}

// Names returns all module names in registration order.
func (g *Graph) Names() []string {
	return lo.Map(g.order, func(n *node, _ int) string { return n.manifest.Name })
}

// Index returns the registration index of name.
func (g *Graph) Index(name string) (int, bool) {
	n, ok := g.nodes[name]
	if !ok {
		return 0, false
	}
	return n.index, true
}

// Dependencies returns the direct dependencies of name in declaration order.
// It returns nil for an unknown module.
func (g *Graph) Dependencies(name string) []Dependency {
	n, ok := g.nodes[name]
	if !ok {
		return nil
	}
	return append([]Dependency(nil), n.deps...)
}

// PublicDependencies returns the names of the direct public dependencies of name.
func (g *Graph) PublicDependencies(name string) []string {
	return g.depNames(name, manifest.Public)
}

// PrivateDependencies returns the names of the direct private dependencies of name.
func (g *Graph) PrivateDependencies(name string) []string {
	return g.depNames(name, manifest.Private)
}

func (g *Graph) depNames(name string, vis manifest.Visibility) []string {
	n, ok := g.nodes[name]
	if !ok {
		return nil
	}
	return lo.FilterMap(n.deps, func(d Dependency, _ int) (string, bool) {
		return d.Name, d.Visibility == vis
	})
}

// Dependents returns the modules that depend directly on name, in
// registration order.
func (g *Graph) Dependents(name string) []string {
	n, ok := g.nodes[name]
	if !ok {
		return nil
	}
	return append([]string(nil), n.dependents...)
}

// Edges returns every edge, grouped by source module in registration order.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, n := range g.order {
		for _, d := range n.deps {
			edges = append(edges, Edge{From: n.manifest.Name, To: d.Name, Visibility: d.Visibility})
		}
	}
	return edges
}

// Roots returns the modules no other module depends on, in registration order.
func (g *Graph) Roots() []string {
	return lo.FilterMap(g.order, func(n *node, _ int) (string, bool) {
		return n.manifest.Name, len(n.dependents) == 0
	})
}
