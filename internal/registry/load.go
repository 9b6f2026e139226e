package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
)

// FromModel creates a registry and registers every manifest of the loaded
// config model in model order. The first failing manifest aborts the load.
func FromModel(ctx context.Context, model *config.Model) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading manifests from config model...", "manifest_count", len(model.Manifests))

	reg := New()
	for _, m := range model.Manifests {
		if err := reg.Register(m); err != nil {
			logger.Error("Failed to register module manifest.", "module", m.Name, "source", m.Source, "error", err)
			return nil, fmt.Errorf("failed to register module %q: %w", m.Name, err)
		}
		logger.Debug("Registered module manifest.", "module", m.Name, "index", reg.Len()-1, "pch_usage", m.Mode())
	}

	if reg.Len() == 0 {
		logger.Warn("No module manifests were registered.")
	}
	logger.Info("Registry loaded successfully.", "modules_registered", reg.Len())
	return reg, nil
}
