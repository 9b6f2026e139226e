package config

import "github.com/specialistvlad/modgraph/internal/manifest"

// Model is everything the loaders produced for one build session.
type Model struct {
	// Manifests in load order.
	Manifests []*manifest.Manifest
	// Files that were read, in load order.
	Files []string
}
