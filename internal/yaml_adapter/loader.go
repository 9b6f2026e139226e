// Package yaml_adapter decodes module manifests written in YAML.
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/manifest"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// LoadFile reads every YAML document in path. A document is either a single
// module or a `modules:` list.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]*manifest.Manifest, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}
	return l.LoadSource(ctx, path, src)
}

// LoadSource decodes YAML held in memory. filename is used for diagnostics.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) ([]*manifest.Manifest, error) {
	logger := ctxlog.FromContext(ctx)

	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var out []*manifest.Manifest
	for doc := 0; ; doc++ {
		var f fileDoc
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s (document %d): %w", filename, doc, err)
		}

		docs, err := f.modules()
		if err != nil {
			return nil, fmt.Errorf("YAML file %s (document %d): %w", filename, doc, err)
		}
		for _, d := range docs {
			m, err := d.translate(filename)
			if err != nil {
				return nil, err
			}
			logger.Debug("Translated module document.", "module", m.Name, "file", filename, "pch_usage", m.Mode())
			out = append(out, m)
		}
	}
	return out, nil
}
