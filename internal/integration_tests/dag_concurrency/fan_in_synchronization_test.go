package integration_tests

import (
	"testing"
	"time"

	"github.com/specialistvlad/modgraph/internal/app"
	"github.com/specialistvlad/modgraph/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestDagConcurrency_FanInSynchronization validates that a module waits for
// all of its dependencies.
func TestDagConcurrency_FanInSynchronization(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	names := []string{"A", "B", "C", "Game"}
	deps := map[string][]string{"Game": {"A", "B", "C"}}
	files := map[string]string{"Modules.hcl": chainHCL(names, deps)}

	done := make(chan string, len(names))
	compiler := testutil.NewSleeperCompiler(done, 50*time.Millisecond)
	cfg := app.Config{Command: app.CommandBuild, WorkerCount: 4}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, cfg, app.WithCompiler(compiler))

	// --- Assert ---
	require.NoError(t, result.Err)
	for _, dep := range []string{"A", "B", "C"} {
		testutil.AssertFinishedBefore(t, compiler, dep, "Game")
	}
	close(done)
	var order []string
	for name := range done {
		order = append(order, name)
	}
	require.Len(t, order, len(names))
	require.Equal(t, "Game", order[len(order)-1])
}
