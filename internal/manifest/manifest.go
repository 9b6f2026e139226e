package manifest

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Visibility classifies a dependency edge.
type Visibility string

const (
	// Public dependencies are visible to anything depending on the declaring module.
	Public Visibility = "public"
	// Private dependencies are visible only to the declaring module's implementation.
	Private Visibility = "private"
)

// ParseVisibility accepts "public" or "private".
func ParseVisibility(s string) (Visibility, error) {
	switch Visibility(s) {
	case Public, Private:
		return Visibility(s), nil
	}
	return "", fmt.Errorf("unknown visibility %q: must be 'public' or 'private'", s)
}

// Group is a labelled batch of dependencies sharing one visibility, mirroring
// the grouped declarations found in hand-written descriptors ("GAS", "UI", ...).
type Group struct {
	Label      string
	Visibility Visibility
	Modules    []string
}

// Manifest is one module's declared identity, PCH mode and dependency lists.
type Manifest struct {
	Name        string
	PCHUsage    PCHMode
	Version     *semver.Version
	Description string

	// PublicDependencies and PrivateDependencies are the flat lists as
	// written. Use Public/Private to get the lists with groups folded in.
	PublicDependencies  []string
	PrivateDependencies []string
	Groups              []Group

	// Source is the file the manifest was loaded from, if any.
	Source string
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*$`)

// Public returns the ordered public dependency names: the flat list followed
// by public groups in declaration order, with duplicates removed.
func (m *Manifest) Public() []string {
	return m.collect(Public, m.PublicDependencies)
}

// Private returns the ordered private dependency names: the flat list followed
// by private groups in declaration order, with duplicates removed.
func (m *Manifest) Private() []string {
	return m.collect(Private, m.PrivateDependencies)
}

func (m *Manifest) collect(vis Visibility, flat []string) []string {
	seen := make(map[string]struct{}, len(flat))
	var out []string
	add := func(names []string) {
		for _, name := range names {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	add(flat)
	for _, g := range m.Groups {
		if g.Visibility == vis {
			add(g.Modules)
		}
	}
	return out
}

// Validate checks the manifest's own invariants. It does not check that the
// dependencies exist; that is the graph builder's job.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return &ValidationError{Field: "name", Reason: "module name is required"}
	}
	if !identifierPattern.MatchString(m.Name) {
		return &ValidationError{Module: m.Name, Field: "name", Reason: "not a valid identifier"}
	}
	if m.PCHUsage != "" && !m.PCHUsage.Valid() {
		return &ValidationError{Module: m.Name, Field: "pch_usage", Reason: fmt.Sprintf("unknown mode %q", m.PCHUsage)}
	}
	for _, g := range m.Groups {
		if g.Visibility != Public && g.Visibility != Private {
			return &ValidationError{Module: m.Name, Field: "group." + g.Label, Reason: fmt.Sprintf("unknown visibility %q", g.Visibility)}
		}
	}
	for _, lists := range [][]string{m.Public(), m.Private()} {
		for _, dep := range lists {
			if dep == "" {
				return &ValidationError{Module: m.Name, Field: "dependencies", Reason: "empty dependency name"}
			}
			if dep == m.Name {
				return &ValidationError{Module: m.Name, Field: "dependencies", Reason: "module depends on itself"}
			}
		}
	}
	return nil
}

// Mode returns the declared PCH mode or DefaultPCHMode when none was set.
func (m *Manifest) Mode() PCHMode {
	if m.PCHUsage == "" {
		return DefaultPCHMode
	}
	return m.PCHUsage
}

// ParseVersion parses an optional semantic version. An empty string yields nil.
func ParseVersion(s string) (*semver.Version, error) {
	if s == "" {
		return nil, nil
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}
