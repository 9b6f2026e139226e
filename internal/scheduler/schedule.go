package scheduler

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/dag"
)

// Schedule checks g for cycles and orders its modules so that every module
// comes after all of its dependencies, breaking ties by registration index.
func Schedule(ctx context.Context, g *dag.Graph) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Schedule: Starting.", "module_count", g.Len())

	if err := DetectCycles(g); err != nil {
		logger.Debug("Schedule: Cycle detected.", "error", err)
		return nil, err
	}
	logger.Debug("Schedule: Cycle detection passed.")

	names := g.Names()
	pending := make([]int, len(names))
	q := &readyQueue{}
	for i, name := range names {
		pending[i] = len(g.Dependencies(name))
		if pending[i] == 0 {
			heap.Push(q, i)
		}
	}

	order := make([]string, 0, len(names))
	for q.Len() > 0 {
		idx := heap.Pop(q).(int)
		name := names[idx]
		order = append(order, name)

		for _, dependent := range g.Dependents(name) {
			di, _ := g.Index(dependent)
			pending[di]--
			if pending[di] == 0 {
				heap.Push(q, di)
			}
		}
	}

	if len(order) != len(names) {
		// Only reachable if DetectCycles missed a loop.
		return nil, fmt.Errorf("scheduled %d of %d modules", len(order), len(names))
	}

	plan := newPlan(g, order)
	logger.Debug("Schedule: Plan complete.", "module_count", plan.Len(), "layer_count", len(plan.layers))
	return plan, nil
}
