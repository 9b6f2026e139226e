package manifest

import (
	"fmt"
	"strings"
)

// PCHMode is the precompiled-header usage strategy of a module. It affects
// how the external compiler layer groups compilation units and never the
// shape of the dependency graph.
type PCHMode string

const (
	// PCHNone disables precompiled headers for the module.
	PCHNone PCHMode = "NoPCHs"
	// PCHUseExplicitOrShared uses the module's own PCH when one is declared and
	// falls back to a shared PCH otherwise.
	PCHUseExplicitOrShared PCHMode = "UseExplicitOrSharedPCHs"
	// PCHUseShared always uses a shared PCH from a dependency.
	PCHUseShared PCHMode = "UseSharedPCHs"
	// PCHManual leaves PCH selection to the module (no shared PCH).
	PCHManual PCHMode = "NoSharedPCHs"
)

// DefaultPCHMode is assumed when a manifest does not declare a mode.
const DefaultPCHMode = PCHUseExplicitOrShared

// PCHModes lists every supported mode in declaration order.
var PCHModes = []PCHMode{PCHNone, PCHUseExplicitOrShared, PCHUseShared, PCHManual}

var pchAliases = map[string]PCHMode{
	"nopchs":                  PCHNone,
	"none":                    PCHNone,
	"useexplicitorsharedpchs": PCHUseExplicitOrShared,
	"useexplicitorshared":     PCHUseExplicitOrShared,
	"useexplicit":             PCHUseExplicitOrShared,
	"usesharedpchs":           PCHUseShared,
	"useshared":               PCHUseShared,
	"nosharedpchs":            PCHManual,
	"manual":                  PCHManual,
}

// ParsePCHMode converts a textual mode into a PCHMode. Matching ignores case,
// underscores and an optional "PCHUsageMode." prefix, so "UseShared",
// "use_shared" and "PCHUsageMode.UseSharedPCHs" are all accepted. An empty
// string yields DefaultPCHMode.
func ParsePCHMode(s string) (PCHMode, error) {
	key := strings.TrimSpace(s)
	if key == "" {
		return DefaultPCHMode, nil
	}
	key = strings.TrimPrefix(key, "PCHUsageMode.")
	key = strings.ToLower(strings.ReplaceAll(key, "_", ""))
	if mode, ok := pchAliases[key]; ok {
		return mode, nil
	}
	return "", fmt.Errorf("unknown pch usage mode %q", s)
}

// Valid reports whether m is one of the supported modes.
func (m PCHMode) Valid() bool {
	for _, known := range PCHModes {
		if m == known {
			return true
		}
	}
	return false
}

// String returns the canonical mode name.
func (m PCHMode) String() string {
	return string(m)
}
