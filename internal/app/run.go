package app

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/executor"
	"github.com/specialistvlad/modgraph/internal/registry"
	"github.com/specialistvlad/modgraph/internal/render"
	"github.com/specialistvlad/modgraph/internal/scheduler"
	"github.com/specialistvlad/modgraph/internal/visibility"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	a.startHealthcheckServer()
	defer a.closeHealthcheckServer()

	g, err := a.buildGraph(ctx)
	if err != nil {
		return err
	}

	renderer := render.New(render.Format(a.config.Format))
	if a.config.Command == CommandGraph {
		return renderer.Graph(a.outW, g)
	}

	start := time.Now()
	plan, err := scheduler.Schedule(ctx, g)
	a.metrics.planDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("failed to schedule modules: %w", err)
	}
	a.logger.Debug("Build plan ready.", "modules", plan.Len(), "layers", len(plan.Layers()))

	switch a.config.Command {
	case CommandVisibility:
		return a.runVisibility(ctx, renderer, plan)
	case CommandBuild:
		return a.runBuild(ctx, renderer, plan)
	}
	return renderer.Plan(a.outW, plan)
}

// buildGraph loads every manifest, registers it and resolves the graph.
func (a *App) buildGraph(ctx context.Context) (*dag.Graph, error) {
	model, err := config.Load(ctx, a.loaders, a.config.Paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}

	reg, err := registry.FromModel(ctx, model)
	if err != nil {
		return nil, err
	}

	g, err := dag.Build(ctx, reg, a.config.Environment())
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency graph: %w", err)
	}
	a.metrics.graphModules.Set(float64(g.Len()))
	a.metrics.graphEdges.Set(float64(len(g.Edges())))
	a.logger.Info("Dependency graph built.", "modules", g.Len(), "files", len(model.Files))
	return g, nil
}

func (a *App) runVisibility(ctx context.Context, renderer *render.Renderer, plan *scheduler.Plan) error {
	resolver, err := visibility.NewResolver(plan.Graph(), 0)
	if err != nil {
		return err
	}

	if a.config.Module != "" {
		set, err := resolver.Resolve(a.config.Module)
		if err != nil {
			return fmt.Errorf("failed to resolve visibility: %w", err)
		}
		return renderer.Visibility(a.outW, []visibility.Set{set})
	}

	sets, err := resolver.ResolveAll(ctx, plan, a.config.WorkerCount)
	if err != nil {
		return err
	}
	return renderer.Visibility(a.outW, sets)
}

func (a *App) runBuild(ctx context.Context, renderer *render.Renderer, plan *scheduler.Plan) error {
	if plan.Len() == 0 {
		a.logger.Warn("No modules found, nothing to build.")
		return nil
	}

	exec, err := executor.New(plan, a.compiler,
		executor.WithWorkers(a.config.WorkerCount),
		executor.WithMetrics(a.metrics.executor),
	)
	if err != nil {
		return err
	}

	a.logger.Info("🚀 Starting build...")
	report, runErr := exec.Execute(ctx)
	if report != nil {
		if err := renderer.Report(a.outW, report); err != nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("build failed: %w", runErr)
	}
	a.logger.Info("🏁 Build finished.")
	return nil
}
