package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/executor"
	"github.com/specialistvlad/modgraph/internal/manifest"
	"github.com/specialistvlad/modgraph/internal/node"
	"github.com/specialistvlad/modgraph/internal/scheduler"
	"github.com/specialistvlad/modgraph/internal/visibility"
)

type styles struct {
	header  lipgloss.Style
	faint   lipgloss.Style
	name    lipgloss.Style
	public  lipgloss.Style
	private lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
	skipped lipgloss.Style
}

// newStyles binds styles to w so colour is only emitted to terminals.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header:  r.NewStyle().Bold(true),
		faint:   r.NewStyle().Foreground(lipgloss.Color("240")),
		name:    r.NewStyle().Foreground(lipgloss.Color("12")),
		public:  r.NewStyle().Foreground(lipgloss.Color("10")),
		private: r.NewStyle().Foreground(lipgloss.Color("11")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("10")),
		failed:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		skipped: r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func nameWidth(names []string) int {
	return lo.Max(lo.Map(names, func(s string, _ int) int { return len(s) }))
}

func planText(w io.Writer, plan *scheduler.Plan) string {
	st := newStyles(w)
	g := plan.Graph()
	names := plan.Modules()
	layers := layerIndex(plan)
	width := nameWidth(names)
	digits := len(fmt.Sprint(len(names)))

	var b strings.Builder
	b.WriteString(st.header.Render(fmt.Sprintf("Build plan: %d modules in %d layers", len(names), len(plan.Layers()))))
	b.WriteString(" " + st.faint.Render(g.Environment().String()) + "\n")
	for i, name := range names {
		m, _ := g.Module(name)
		fmt.Fprintf(&b, "%s %s  %s  %s\n",
			st.faint.Render(fmt.Sprintf("%*d.", digits, i+1)),
			st.name.Render(fmt.Sprintf("%-*s", width, name)),
			st.faint.Render(fmt.Sprintf("layer %d", layers[name])),
			m.Mode(),
		)
	}
	return b.String()
}

func graphText(w io.Writer, g *dag.Graph) string {
	st := newStyles(w)

	var b strings.Builder
	b.WriteString(st.header.Render(fmt.Sprintf("Module graph: %d modules, %d edges", g.Len(), len(g.Edges()))) + "\n")
	for _, name := range g.Names() {
		b.WriteString(st.name.Render(name) + "\n")
		for _, d := range g.Dependencies(name) {
			label := st.public.Render("public ")
			if d.Visibility == manifest.Private {
				label = st.private.Render("private")
			}
			fmt.Fprintf(&b, "  %s -> %s\n", label, d.Name)
		}
	}
	return b.String()
}

func visibilityText(w io.Writer, sets []visibility.Set) string {
	st := newStyles(w)
	width := nameWidth(lo.Map(sets, func(s visibility.Set, _ int) string { return s.Module }))

	var b strings.Builder
	for _, s := range sets {
		visible := st.faint.Render("(none)")
		if len(s.Modules) > 0 {
			visible = strings.Join(s.Modules, ", ")
		}
		fmt.Fprintf(&b, "%s  %s\n", st.name.Render(fmt.Sprintf("%-*s", width, s.Module)), visible)
	}
	return b.String()
}

func reportText(w io.Writer, r *executor.Report) string {
	st := newStyles(w)
	width := nameWidth(lo.Map(r.Outcomes, func(o executor.Outcome, _ int) string { return o.Module }))

	var b strings.Builder
	for _, o := range r.Outcomes {
		var status string
		switch o.Status {
		case node.StatusCompleted:
			status = st.ok.Render(o.Status.String())
		case node.StatusFailed:
			status = st.failed.Render(o.Status.String())
		default:
			status = st.skipped.Render(o.Status.String())
		}
		line := fmt.Sprintf("%-*s  %s", width, o.Module, status)
		if o.Err != nil {
			line += "  " + st.faint.Render(o.Err.Error())
		}
		b.WriteString(line + "\n")
	}
	fmt.Fprintf(&b, "%s\n", st.header.Render(fmt.Sprintf("%d completed, %d failed, %d skipped",
		r.Count(node.StatusCompleted), r.Count(node.StatusFailed), r.Count(node.StatusSkipped))))
	return b.String()
}
