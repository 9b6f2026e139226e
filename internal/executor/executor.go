package executor

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/inmemorystore"
	"github.com/specialistvlad/modgraph/internal/node"
	"github.com/specialistvlad/modgraph/internal/nodestore"
	"github.com/specialistvlad/modgraph/internal/scheduler"
	"github.com/specialistvlad/modgraph/internal/visibility"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 4

// Executor dispatches the modules of a plan to a Compiler.
type Executor struct {
	plan     *scheduler.Plan
	compiler Compiler
	resolver *visibility.Resolver
	store    nodestore.Store
	metrics  *Metrics
	workers  int
}

// Option configures an Executor.
type Option func(*Executor)

// WithWorkers sets the number of concurrent workers. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(e *Executor) {
		if n >= 1 {
			e.workers = n
		}
	}
}

// WithStore records module state in s instead of a fresh in-memory store.
func WithStore(s nodestore.Store) Option {
	return func(e *Executor) { e.store = s }
}

// WithResolver reuses an existing visibility resolver for the plan's graph.
func WithResolver(r *visibility.Resolver) Option {
	return func(e *Executor) { e.resolver = r }
}

// WithMetrics records executor metrics.
func WithMetrics(m *Metrics) Option {
	return func(e *Executor) { e.metrics = m }
}

// New creates an executor for plan.
func New(plan *scheduler.Plan, compiler Compiler, opts ...Option) (*Executor, error) {
	if plan == nil {
		return nil, fmt.Errorf("executor requires a plan")
	}
	if compiler == nil {
		return nil, fmt.Errorf("executor requires a compiler")
	}
	e := &Executor{
		plan:     plan,
		compiler: compiler,
		workers:  DefaultWorkers,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = inmemorystore.New()
	}
	if e.resolver == nil {
		r, err := visibility.NewResolver(plan.Graph(), 0)
		if err != nil {
			return nil, err
		}
		e.resolver = r
	}
	return e, nil
}

// Store returns the store the executor records module state in.
func (e *Executor) Store() nodestore.Store {
	return e.store
}

// run is the state of one Execute call.
type run struct {
	*Executor
	nodes map[string]*node.Node
	wg    sync.WaitGroup

	errOnce  sync.Once
	firstErr error
}

// Execute compiles every module of the plan. It always returns a Report; the
// error is a *ModuleFailedError for the first compiler failure, or the
// context's error if the build was cancelled from outside.
func (e *Executor) Execute(ctx context.Context) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	g := e.plan.Graph()
	modules := e.plan.Modules()

	r := &run{Executor: e, nodes: make(map[string]*node.Node, len(modules))}
	for i, name := range modules {
		m, _ := g.Module(name)
		r.nodes[name] = node.New(m, i, len(g.Dependencies(name)))
		if err := e.store.SetStatus(ctx, name, node.StatusPending); err != nil {
			return nil, fmt.Errorf("failed to initialise state of %q: %w", name, err)
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	readyChan := make(chan *node.Node, len(modules))
	r.wg.Add(len(modules))
	for _, name := range modules {
		if n := r.nodes[name]; n.DepCount() == 0 {
			readyChan <- n
		}
	}

	workers := min(e.workers, max(len(modules), 1))
	logger.Info("Build started.", "modules", len(modules), "workers", workers, "environment", g.Environment().String())
	for i := 0; i < workers; i++ {
		go r.worker(runCtx, readyChan, cancel, i)
	}

	r.wg.Wait()
	close(readyChan)

	report := r.report(ctx)
	logger.Info("Build finished.",
		"completed", report.Count(node.StatusCompleted),
		"failed", report.Count(node.StatusFailed),
		"skipped", report.Count(node.StatusSkipped),
	)

	if r.firstErr != nil {
		return report, r.firstErr
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (r *run) report(ctx context.Context) *Report {
	report := &Report{Outcomes: make([]Outcome, 0, len(r.nodes))}
	for _, name := range r.plan.Modules() {
		out, _ := r.store.GetOutput(ctx, name)
		err, _ := r.store.GetError(ctx, name)
		report.Outcomes = append(report.Outcomes, Outcome{
			Module: name,
			Status: r.nodes[name].Status(),
			Output: out,
			Err:    err,
		})
	}
	return report
}

func (r *run) fail(name string, err error) {
	r.errOnce.Do(func() {
		r.firstErr = &ModuleFailedError{Module: name, Err: err}
	})
}
