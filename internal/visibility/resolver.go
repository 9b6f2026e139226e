package visibility

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/scheduler"
	"golang.org/x/sync/errgroup"
)

// DefaultCacheSize bounds the number of cached sets per resolver.
const DefaultCacheSize = 1024

// Resolver answers visibility queries for one immutable graph and caches the
// results. It is safe for concurrent use.
type Resolver struct {
	graph *dag.Graph
	cache *lru.Cache[string, []string]
}

// NewResolver creates a resolver over g. cacheSize <= 0 selects DefaultCacheSize.
func NewResolver(g *dag.Graph, cacheSize int) (*Resolver, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create visibility cache: %w", err)
	}
	return &Resolver{graph: g, cache: cache}, nil
}

// Resolve returns the visibility set of name, computing it on first use.
func (r *Resolver) Resolve(name string) (Set, error) {
	if cached, ok := r.cache.Get(name); ok {
		return Set{Module: name, Modules: append([]string(nil), cached...)}, nil
	}
	set, err := Resolve(r.graph, name)
	if err != nil {
		return Set{}, err
	}
	r.cache.Add(name, append([]string(nil), set.Modules...))
	return set, nil
}

// ResolveAll computes the set of every module of plan using up to workers
// goroutines. The result is in plan order.
func (r *Resolver) ResolveAll(ctx context.Context, plan *scheduler.Plan, workers int) ([]Set, error) {
	logger := ctxlog.FromContext(ctx)
	if workers < 1 {
		workers = 1
	}

	modules := plan.Modules()
	out := make([]Set, len(modules))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, name := range modules {
		i, name := i, name
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			set, err := r.Resolve(name)
			if err != nil {
				return fmt.Errorf("failed to resolve visibility of %q: %w", name, err)
			}
			out[i] = set
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Visibility sets resolved.", "module_count", len(out), "workers", workers)
	return out, nil
}
