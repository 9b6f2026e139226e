package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/modgraph/internal/manifest"
	"github.com/zclconf/go-cty/cty"
)

// evalContext exposes the `pch` object so manifests can write
// `pch_usage = pch.use_shared` instead of a bare string.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pch": pchObject(),
		},
	}
}

func pchObject() cty.Value {
	attrs := map[string]cty.Value{
		"none":                   cty.StringVal(string(manifest.PCHNone)),
		"use_explicit_or_shared": cty.StringVal(string(manifest.PCHUseExplicitOrShared)),
		"use_shared":             cty.StringVal(string(manifest.PCHUseShared)),
		"manual":                 cty.StringVal(string(manifest.PCHManual)),
	}
	// Canonical names are reachable too: pch.NoSharedPCHs, pch.UseSharedPCHs, ...
	for _, mode := range manifest.PCHModes {
		attrs[string(mode)] = cty.StringVal(string(mode))
	}
	return cty.ObjectVal(attrs)
}
