package config

import (
	"context"

	"github.com/specialistvlad/modgraph/internal/manifest"
)

// Loader decodes manifests of one file format.
type Loader interface {
	// Extensions lists the file name suffixes this loader handles, such as ".hcl".
	Extensions() []string
	// LoadFile decodes every manifest in the file, in declaration order.
	LoadFile(ctx context.Context, path string) ([]*manifest.Manifest, error)
}
