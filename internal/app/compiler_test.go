package app

import (
	"context"
	"testing"

	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/executor"
	"github.com/specialistvlad/modgraph/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDryRunCompiler(t *testing.T) {
	t.Parallel()

	unit := executor.Unit{
		Module:      &manifest.Manifest{Name: "Engine", PCHUsage: manifest.PCHUseShared},
		Visible:     []string{"Core", "CoreUObject"},
		Environment: dag.DefaultEnvironment(),
	}

	out, err := (&DryRunCompiler{}).Compile(context.Background(), unit)

	require.NoError(t, err)
	assert.Equal(t, &DryRunResult{
		Module:         "Engine",
		PCHUsage:       manifest.PCHUseShared,
		IncludeSurface: []string{"Core", "CoreUObject"},
	}, out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&DryRunCompiler{}).Compile(ctx, unit)
	assert.ErrorIs(t, err, context.Canceled)
}
