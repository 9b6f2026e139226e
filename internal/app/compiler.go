package app

import (
	"context"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/executor"
	"github.com/specialistvlad/modgraph/internal/manifest"
)

// DryRunResult is what the dry-run compiler reports for one module.
type DryRunResult struct {
	Module         string
	PCHUsage       manifest.PCHMode
	IncludeSurface []string
}

// DryRunCompiler compiles nothing. It logs each module with the include
// surface a real compiler would be given.
type DryRunCompiler struct{}

var _ executor.Compiler = (*DryRunCompiler)(nil)

// Compile implements executor.Compiler.
func (c *DryRunCompiler) Compile(ctx context.Context, unit executor.Unit) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Info("Compiling module.",
		"module", unit.Module.Name,
		"position", unit.Position,
		"pch_usage", unit.Module.Mode(),
		"include_surface", len(unit.Visible),
		"platform", unit.Environment.Platform,
		"configuration", unit.Environment.Configuration,
	)
	return &DryRunResult{
		Module:         unit.Module.Name,
		PCHUsage:       unit.Module.Mode(),
		IncludeSurface: unit.Visible,
	}, nil
}
