package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/executor"
	"github.com/specialistvlad/modgraph/internal/scheduler"
	"github.com/specialistvlad/modgraph/internal/visibility"
	"gopkg.in/yaml.v3"
)

// Renderer writes views in one format.
type Renderer struct {
	format Format
}

// New returns a renderer for format.
func New(format Format) *Renderer {
	return &Renderer{format: format}
}

// Format returns the renderer's format.
func (r *Renderer) Format() Format {
	return r.format
}

// Plan writes a Build Plan. DOT output draws the plan's graph.
func (r *Renderer) Plan(w io.Writer, plan *scheduler.Plan) error {
	switch r.format {
	case Text:
		return writeString(w, planText(w, plan))
	case DOT:
		return writeString(w, graphDOT(plan.Graph()))
	}
	return r.encode(w, "plan", newPlanDoc(plan))
}

// Graph writes the Module Graph.
func (r *Renderer) Graph(w io.Writer, g *dag.Graph) error {
	switch r.format {
	case Text:
		return writeString(w, graphText(w, g))
	case DOT:
		return writeString(w, graphDOT(g))
	}
	return r.encode(w, "graph", newGraphDoc(g))
}

// Visibility writes visibility sets in the order given.
func (r *Renderer) Visibility(w io.Writer, sets []visibility.Set) error {
	if r.format == Text {
		return writeString(w, visibilityText(w, sets))
	}
	return r.encode(w, "visibility", newVisibilityDocs(sets))
}

// Report writes the outcome of a build.
func (r *Renderer) Report(w io.Writer, report *executor.Report) error {
	if r.format == Text {
		return writeString(w, reportText(w, report))
	}
	return r.encode(w, "report", newReportDoc(report))
}

func (r *Renderer) encode(w io.Writer, view string, doc any) error {
	switch r.format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode %s as JSON: %w", view, err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode %s as YAML: %w", view, err)
		}
		return enc.Close()
	}
	return &UnsupportedError{View: view, Format: r.format}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
