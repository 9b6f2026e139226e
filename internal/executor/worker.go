package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/node"
)

// worker is the core processing loop for a single concurrent worker.
func (r *run) worker(ctx context.Context, readyChan chan *node.Node, cancel context.CancelFunc, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for n := range readyChan {
		workerLogger := logger.With("workerID", workerID, "module", n.Name())

		if err := ctx.Err(); err != nil {
			r.skip(ctx, n, err)
			continue
		}

		workerLogger.Debug("Worker picked up module for compilation.")
		n.SetStatus(node.StatusRunning)
		_ = r.store.SetStatus(ctx, n.Name(), node.StatusRunning)
		r.metrics.started()
		start := time.Now()

		output, err := r.compile(ctx, n)
		if err != nil {
			workerLogger.Error("Module compilation failed.", "error", err)
			n.SetStatus(node.StatusFailed)
			_ = r.store.SetStatus(ctx, n.Name(), node.StatusFailed)
			_ = r.store.SetError(ctx, n.Name(), err)
			r.metrics.finished(node.StatusFailed, time.Since(start))
			r.fail(n.Name(), err)
			cancel()
			r.skipDependents(ctx, n, fmt.Errorf("%w: %q failed", ErrDependencyFailed, n.Name()))
			r.wg.Done()
			continue
		}

		workerLogger.Debug("Module compilation succeeded.")
		n.SetStatus(node.StatusCompleted)
		_ = r.store.SetOutput(ctx, n.Name(), output)
		_ = r.store.SetStatus(ctx, n.Name(), node.StatusCompleted)
		r.metrics.finished(node.StatusCompleted, time.Since(start))

		for _, name := range r.plan.Graph().Dependents(n.Name()) {
			dependent := r.nodes[name]
			if dependent.DecrementDepCount() == 0 {
				workerLogger.Debug("Unlocking dependent module.", "dependent", name)
				readyChan <- dependent
			}
		}

		r.wg.Done()
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}

func (r *run) compile(ctx context.Context, n *node.Node) (any, error) {
	set, err := r.resolver.Resolve(n.Name())
	if err != nil {
		return nil, err
	}
	return r.compiler.Compile(ctx, Unit{
		Module:      n.Manifest,
		Position:    n.Position,
		Visible:     set.Modules,
		Environment: r.plan.Graph().Environment(),
	})
}

// skip marks n and everything depending on it as skipped. Nodes already
// skipped are left alone, so each node releases the WaitGroup exactly once.
func (r *run) skip(ctx context.Context, n *node.Node, cause error) {
	if !n.Skip(&r.wg) {
		return
	}
	ctxlog.FromContext(ctx).Debug("Module skipped.", "module", n.Name(), "cause", cause)
	_ = r.store.SetStatus(ctx, n.Name(), node.StatusSkipped)
	_ = r.store.SetError(ctx, n.Name(), cause)
	r.metrics.skipped()
	r.skipDependents(ctx, n, fmt.Errorf("%w: %q was skipped", ErrDependencyFailed, n.Name()))
}

func (r *run) skipDependents(ctx context.Context, n *node.Node, cause error) {
	for _, name := range r.plan.Graph().Dependents(n.Name()) {
		r.skip(ctx, r.nodes[name], cause)
	}
}
