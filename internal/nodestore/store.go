// Package nodestore defines where the executor records the mutable outcome of
// each module during a build: status, compiler output and error.
//
// The Module Graph stays immutable; everything that changes while a build runs
// lives behind this interface, keyed by module name. A store is created per
// build and discarded with it.
package nodestore

import (
	"context"

	"github.com/specialistvlad/modgraph/internal/node"
)

// Store records per-module execution state.
//
// Implementations must be safe for concurrent use: workers write different
// modules at the same time while the caller may read.
type Store interface {
	// SetStatus records the module's status.
	SetStatus(ctx context.Context, module string, status node.Status) error
	// GetStatus returns the recorded status, or StatusPending if none was set.
	GetStatus(ctx context.Context, module string) (node.Status, error)

	// SetOutput records what the compiler returned for a module.
	SetOutput(ctx context.Context, module string, output any) error
	// GetOutput returns the recorded output, or nil.
	GetOutput(ctx context.Context, module string) (any, error)

	// SetError records why a module failed or was skipped.
	SetError(ctx context.Context, module string, moduleErr error) error
	// GetError returns the recorded error, or nil.
	GetError(ctx context.Context, module string) (error, error)
}
