package dag

import "github.com/specialistvlad/modgraph/internal/manifest"

// Graph is the resolved Module Graph. It is immutable once Build returns and
// therefore safe for concurrent reads.
type Graph struct {
	env   BuildEnvironment
	nodes map[string]*node
	// order holds the nodes in registration order.
	order []*node
}

// Dependency is one outgoing edge of a module.
type Dependency struct {
	Name       string
	Visibility manifest.Visibility
}

// Edge is a directed dependency: From depends on To.
type Edge struct {
	From       string
	To         string
	Visibility manifest.Visibility
}

type node struct {
	manifest *manifest.Manifest
	index    int
	// deps in declaration order, public first.
	deps []Dependency
	// dependents in registration order.
	dependents []string
}
