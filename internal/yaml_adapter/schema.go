package yaml_adapter

import (
	"fmt"

	"github.com/specialistvlad/modgraph/internal/manifest"
)

// fileDoc is one YAML document: either a module at the top level or a list
// under `modules`, never both.
type fileDoc struct {
	moduleDoc `yaml:",inline"`
	Modules   []moduleDoc `yaml:"modules"`
}

type moduleDoc struct {
	Name                string     `yaml:"name"`
	PCHUsage            string     `yaml:"pch_usage"`
	Version             string     `yaml:"version"`
	Description         string     `yaml:"description"`
	PublicDependencies  []string   `yaml:"public_dependencies"`
	PrivateDependencies []string   `yaml:"private_dependencies"`
	Groups              []groupDoc `yaml:"groups"`
}

type groupDoc struct {
	Label      string   `yaml:"label"`
	Visibility string   `yaml:"visibility"`
	Modules    []string `yaml:"modules"`
}

func (f *fileDoc) modules() ([]moduleDoc, error) {
	top := f.moduleDoc
	hasTop := top.Name != "" || top.PCHUsage != "" || top.Version != "" || top.Description != "" ||
		len(top.PublicDependencies) > 0 || len(top.PrivateDependencies) > 0 || len(top.Groups) > 0
	switch {
	case hasTop && len(f.Modules) > 0:
		return nil, fmt.Errorf("a document declares either a single module or a 'modules' list, not both")
	case hasTop:
		return []moduleDoc{top}, nil
	default:
		return f.Modules, nil
	}
}

func (d moduleDoc) translate(path string) (*manifest.Manifest, error) {
	mode, err := manifest.ParsePCHMode(d.PCHUsage)
	if err != nil {
		return nil, fmt.Errorf("module %q in %s: %w", d.Name, path, err)
	}
	version, err := manifest.ParseVersion(d.Version)
	if err != nil {
		return nil, fmt.Errorf("module %q in %s: %w", d.Name, path, err)
	}

	m := &manifest.Manifest{
		Name:                d.Name,
		PCHUsage:            mode,
		Version:             version,
		Description:         d.Description,
		PublicDependencies:  d.PublicDependencies,
		PrivateDependencies: d.PrivateDependencies,
		Source:              path,
	}
	for _, g := range d.Groups {
		vis, err := manifest.ParseVisibility(g.Visibility)
		if err != nil {
			return nil, fmt.Errorf("module %q in %s: group %q: %w", d.Name, path, g.Label, err)
		}
		m.Groups = append(m.Groups, manifest.Group{Label: g.Label, Visibility: vis, Modules: g.Modules})
	}
	return m, nil
}
