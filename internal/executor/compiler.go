package executor

import (
	"context"

	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/manifest"
)

// Unit is everything a compiler needs to build one module.
type Unit struct {
	Module   *manifest.Manifest
	Position int
	// Visible is the module's Effective Visibility Set.
	Visible     []string
	Environment dag.BuildEnvironment
}

// Compiler builds one module. Implementations are called concurrently for
// independent modules and should honour ctx cancellation.
type Compiler interface {
	Compile(ctx context.Context, unit Unit) (any, error)
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(ctx context.Context, unit Unit) (any, error)

// Compile implements Compiler.
func (f CompilerFunc) Compile(ctx context.Context, unit Unit) (any, error) {
	return f(ctx, unit)
}
