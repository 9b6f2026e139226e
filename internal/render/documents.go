package render

import (
	"github.com/samber/lo"
	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/executor"
	"github.com/specialistvlad/modgraph/internal/scheduler"
	"github.com/specialistvlad/modgraph/internal/visibility"
)

// The document types are the stable JSON/YAML shapes of each view.

type environmentDoc struct {
	Platform      string `json:"platform" yaml:"platform"`
	Configuration string `json:"configuration" yaml:"configuration"`
	Toolchain     string `json:"toolchain" yaml:"toolchain"`
	Strict        bool   `json:"strict" yaml:"strict"`
}

type planDoc struct {
	Environment environmentDoc `json:"environment" yaml:"environment"`
	Modules     []planEntryDoc `json:"modules" yaml:"modules"`
	Layers      [][]string     `json:"layers" yaml:"layers"`
}

type planEntryDoc struct {
	Position int    `json:"position" yaml:"position"`
	Name     string `json:"name" yaml:"name"`
	PCHUsage string `json:"pch_usage" yaml:"pch_usage"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
	Layer    int    `json:"layer" yaml:"layer"`
}

type graphDoc struct {
	Environment environmentDoc   `json:"environment" yaml:"environment"`
	Modules     []graphModuleDoc `json:"modules" yaml:"modules"`
}

type graphModuleDoc struct {
	Name       string   `json:"name" yaml:"name"`
	PCHUsage   string   `json:"pch_usage" yaml:"pch_usage"`
	Public     []string `json:"public_dependencies" yaml:"public_dependencies"`
	Private    []string `json:"private_dependencies" yaml:"private_dependencies"`
	Dependents []string `json:"dependents" yaml:"dependents"`
	Source     string   `json:"source,omitempty" yaml:"source,omitempty"`
}

type visibilityDoc struct {
	Module  string   `json:"module" yaml:"module"`
	Visible []string `json:"visible" yaml:"visible"`
}

type reportDoc struct {
	Succeeded bool             `json:"succeeded" yaml:"succeeded"`
	Modules   []reportEntryDoc `json:"modules" yaml:"modules"`
}

type reportEntryDoc struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newEnvironmentDoc(env dag.BuildEnvironment) environmentDoc {
	return environmentDoc{
		Platform:      env.Platform,
		Configuration: env.Configuration,
		Toolchain:     env.Toolchain,
		Strict:        env.Strict,
	}
}

func layerIndex(plan *scheduler.Plan) map[string]int {
	out := make(map[string]int, plan.Len())
	for i, layer := range plan.Layers() {
		for _, name := range layer {
			out[name] = i
		}
	}
	return out
}

func newPlanDoc(plan *scheduler.Plan) planDoc {
	g := plan.Graph()
	layers := layerIndex(plan)
	return planDoc{
		Environment: newEnvironmentDoc(g.Environment()),
		Modules: lo.Map(plan.Modules(), func(name string, i int) planEntryDoc {
			m, _ := g.Module(name)
			e := planEntryDoc{Position: i, Name: name, PCHUsage: m.Mode().String(), Layer: layers[name]}
			if m.Version != nil {
				e.Version = m.Version.String()
			}
			return e
		}),
		Layers: plan.Layers(),
	}
}

func newGraphDoc(g *dag.Graph) graphDoc {
	return graphDoc{
		Environment: newEnvironmentDoc(g.Environment()),
		Modules: lo.Map(g.Names(), func(name string, _ int) graphModuleDoc {
			m, _ := g.Module(name)
			return graphModuleDoc{
				Name:       name,
				PCHUsage:   m.Mode().String(),
				Public:     emptyIfNil(g.PublicDependencies(name)),
				Private:    emptyIfNil(g.PrivateDependencies(name)),
				Dependents: emptyIfNil(g.Dependents(name)),
				Source:     m.Source,
			}
		}),
	}
}

func newVisibilityDocs(sets []visibility.Set) []visibilityDoc {
	return lo.Map(sets, func(s visibility.Set, _ int) visibilityDoc {
		return visibilityDoc{Module: s.Module, Visible: emptyIfNil(s.Modules)}
	})
}

func newReportDoc(r *executor.Report) reportDoc {
	return reportDoc{
		Succeeded: r.Succeeded(),
		Modules: lo.Map(r.Outcomes, func(o executor.Outcome, _ int) reportEntryDoc {
			e := reportEntryDoc{Name: o.Module, Status: o.Status.String()}
			if o.Err != nil {
				e.Error = o.Err.Error()
			}
			return e
		}),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
