package render

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/manifest"
)

// graphDOT draws the graph for Graphviz. Private edges are dashed.
func graphDOT(g *dag.Graph) string {
	var b strings.Builder
	b.WriteString("digraph modules {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box];\n")
	for _, name := range g.Names() {
		b.WriteString("  " + strconv.Quote(name) + ";\n")
	}
	for _, e := range g.Edges() {
		b.WriteString("  " + strconv.Quote(e.From) + " -> " + strconv.Quote(e.To))
		if e.Visibility == manifest.Private {
			b.WriteString(" [style=dashed]")
		}
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
