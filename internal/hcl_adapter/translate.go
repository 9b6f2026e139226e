package hcl_adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/modgraph/internal/manifest"
)

func (l *Loader) decode(ctx context.Context, path string, body hcl.Body, logger *slog.Logger) ([]*manifest.Manifest, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, evalContext(), &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	out := make([]*manifest.Manifest, 0, len(root.Modules))
	for _, block := range root.Modules {
		m, err := translateModule(block, path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Translated module block.",
			"module", m.Name,
			"file", path,
			"pch_usage", m.Mode(),
			"public", len(m.PublicDependencies),
			"private", len(m.PrivateDependencies),
			"groups", len(m.Groups),
		)
		out = append(out, m)
	}
	return out, nil
}

func translateModule(b *moduleBlock, path string) (*manifest.Manifest, error) {
	m := &manifest.Manifest{
		Name:                b.Name,
		PCHUsage:            manifest.DefaultPCHMode,
		PublicDependencies:  b.PublicDependencies,
		PrivateDependencies: b.PrivateDependencies,
		Source:              path,
	}

	if b.PCHUsage != nil {
		mode, err := manifest.ParsePCHMode(*b.PCHUsage)
		if err != nil {
			return nil, fmt.Errorf("module %q in %s: %w", b.Name, path, err)
		}
		m.PCHUsage = mode
	}
	if b.Version != nil {
		v, err := manifest.ParseVersion(*b.Version)
		if err != nil {
			return nil, fmt.Errorf("module %q in %s: %w", b.Name, path, err)
		}
		m.Version = v
	}
	if b.Description != nil {
		m.Description = *b.Description
	}

	for _, g := range b.Groups {
		vis, err := manifest.ParseVisibility(g.Visibility)
		if err != nil {
			return nil, fmt.Errorf("module %q in %s: group %q: %w", b.Name, path, g.Label, err)
		}
		m.Groups = append(m.Groups, manifest.Group{
			Label:      g.Label,
			Visibility: vis,
			Modules:    g.Modules,
		})
	}
	return m, nil
}
