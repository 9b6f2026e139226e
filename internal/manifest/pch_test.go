package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePCHMode(t *testing.T) {
	t.Parallel()

	tests := map[string]PCHMode{
		"":                                     PCHUseExplicitOrShared,
		"None":                                 PCHNone,
		"NoPCHs":                               PCHNone,
		"UseExplicit":                          PCHUseExplicitOrShared,
		"UseExplicitOrShared":                  PCHUseExplicitOrShared,
		"PCHUsageMode.UseExplicitOrSharedPCHs": PCHUseExplicitOrShared,
		"use_shared":                           PCHUseShared,
		"UseSharedPCHs":                        PCHUseShared,
		"Manual":                               PCHManual,
		"NoSharedPCHs":                         PCHManual,
	}
	for input, want := range tests {
		got, err := ParsePCHMode(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, err := ParsePCHMode("Always")
	assert.ErrorContains(t, err, "unknown pch usage mode")
}

func TestPCHMode_Valid(t *testing.T) {
	for _, m := range PCHModes {
		assert.True(t, m.Valid(), m.String())
	}
	assert.False(t, PCHMode("UseExplicit").Valid())
}
