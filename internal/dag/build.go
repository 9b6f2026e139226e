package dag

import (
	"context"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/manifest"
	"github.com/specialistvlad/modgraph/internal/registry"
)

// Build resolves every registered module's dependencies into a Graph. An
// unresolved name fails with *registry.UnknownModuleError naming both the
// referring module and the missing dependency.
func Build(ctx context.Context, reg *registry.Registry, env BuildEnvironment) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "environment", env.String(), "strict", env.Strict)

	modules := reg.Modules()
	g := newGraph(env, len(modules))

	// First pass: one node per module, in registration order.
	for _, m := range modules {
		g.addNode(m)
	}
	logger.Debug("Build: Node creation complete.", "node_count", g.Len())

	// Second pass: link dependencies, public list first.
	edges := 0
	for _, from := range g.order {
		m := from.manifest
		public := m.Public()
		publicSet := make(map[string]struct{}, len(public))

		for _, dep := range public {
			to, ok := g.nodes[dep]
			if !ok {
				return nil, &registry.UnknownModuleError{Name: dep, Referrer: m.Name}
			}
			publicSet[dep] = struct{}{}
			g.addEdge(from, to, manifest.Public)
			edges++
		}

		for _, dep := range m.Private() {
			to, ok := g.nodes[dep]
			if !ok {
				return nil, &registry.UnknownModuleError{Name: dep, Referrer: m.Name}
			}
			if _, dup := publicSet[dep]; dup {
				if env.Strict {
					return nil, &ConflictingVisibilityError{Module: m.Name, Dependency: dep}
				}
				logger.Warn("Dependency listed as both public and private; treating it as public.", "module", m.Name, "dependency", dep)
				continue
			}
			g.addEdge(from, to, manifest.Private)
			edges++
		}
	}
	logger.Debug("Build: Node linking complete.", "edge_count", edges)

	logger.Debug("Build: Graph construction successful.")
	return g, nil
}
