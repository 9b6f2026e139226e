package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertModuleCompiled checks the log output of a HarnessResult for the
// dry-run compiler's line about module.
func AssertModuleCompiled(t *testing.T, result *HarnessResult, module string) {
	t.Helper()

	expected := fmt.Sprintf("module=%s ", module)
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "Compiling module.") && strings.Contains(line, expected) {
			return
		}
	}
	require.Fail(t, "module was not compiled", "expected a compile log line for module %q", module)
}

// AssertFinishedBefore checks that dep finished before dependent started.
func AssertFinishedBefore(t *testing.T, c *SleeperCompiler, dep, dependent string) {
	t.Helper()

	d := c.Record(dep)
	require.NotNil(t, d, "module %q did not run", dep)
	m := c.Record(dependent)
	require.NotNil(t, m, "module %q did not run", dependent)
	require.False(t, m.Start.Before(d.End), "%q started before %q finished", dependent, dep)
}
