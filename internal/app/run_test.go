package app_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/modgraph/internal/app"
	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/executor"
	"github.com/specialistvlad/modgraph/internal/registry"
	"github.com/specialistvlad/modgraph/internal/scheduler"
	"github.com/specialistvlad/modgraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gameProject = map[string]string{
	"Source/Core/Core.module.hcl": `
module "Core" {
  pch_usage = pch.none
}
`,
	"Source/Engine/Engine.module.hcl": `
module "Engine" {
  public_dependencies  = ["Core"]
  private_dependencies = ["Renderer"]
}

module "Renderer" {
  pch_usage           = pch.use_shared
  public_dependencies = ["Core"]
}
`,
	"Source/Game/Game.module.yaml": `
name: Game
pch_usage: UseExplicitOrSharedPCHs
public_dependencies: [Engine]
groups:
  - label: UI
    visibility: private
    modules: [Slate]
`,
	"Source/Slate/Slate.module.yml": `
name: Slate
private_dependencies: [Core]
`,
}

func TestRun_PlanJSON(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := testutil.RunIntegrationTest(t, gameProject, app.Config{Command: app.CommandPlan, Format: "json"})

	// --- Assert ---
	require.NoError(t, result.Err)
	var doc struct {
		Modules []struct {
			Name     string `json:"name"`
			PCHUsage string `json:"pch_usage"`
		} `json:"modules"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Output), &doc))

	var names []string
	for _, m := range doc.Modules {
		names = append(names, m.Name)
	}
	// Files load in path order: Core, Engine (+Renderer), Game, Slate.
	assert.Equal(t, []string{"Core", "Renderer", "Engine", "Slate", "Game"}, names)
	assert.Equal(t, "NoPCHs", doc.Modules[0].PCHUsage)
	assert.Equal(t, "UseSharedPCHs", doc.Modules[1].PCHUsage)
	assert.Contains(t, result.LogOutput, "Dependency graph built.")
}

func TestRun_GraphDOT(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, gameProject, app.Config{Command: app.CommandGraph, Format: "dot"})

	require.NoError(t, result.Err)
	assert.True(t, strings.HasPrefix(result.Output, "digraph modules {"))
	assert.Contains(t, result.Output, `"Engine" -> "Renderer" [style=dashed];`)
	assert.Contains(t, result.Output, `"Game" -> "Engine";`)
}

func TestRun_VisibilitySingleModule(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, gameProject, app.Config{Command: app.CommandVisibility, Module: "Game", Format: "json"})

	require.NoError(t, result.Err)
	var docs []struct {
		Module  string   `json:"module"`
		Visible []string `json:"visible"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Output), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Game", docs[0].Module)
	// Renderer is private to Engine and Slate's Core edge is private, but
	// Core still arrives through Engine's public edge.
	assert.Equal(t, []string{"Core", "Engine", "Slate"}, docs[0].Visible)
}

func TestRun_VisibilityAll(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, gameProject, app.Config{Command: app.CommandVisibility})

	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "Core")
	assert.Contains(t, result.Output, "(none)")
}

func TestRun_BuildDryRun(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, gameProject, app.Config{Command: app.CommandBuild, WorkerCount: 2})

	require.NoError(t, result.Err)
	for _, m := range []string{"Core", "Renderer", "Engine", "Slate", "Game"} {
		testutil.AssertModuleCompiled(t, result, m)
	}
	assert.Contains(t, result.Output, "5 completed, 0 failed, 0 skipped")
}

func TestRun_BuildRespectsDependencies(t *testing.T) {
	t.Parallel()

	compiler := testutil.NewSleeperCompiler(nil, 5*time.Millisecond)
	result := testutil.RunIntegrationTest(t, gameProject,
		app.Config{Command: app.CommandBuild, WorkerCount: 4},
		app.WithCompiler(compiler),
	)

	require.NoError(t, result.Err)
	testutil.AssertFinishedBefore(t, compiler, "Core", "Engine")
	testutil.AssertFinishedBefore(t, compiler, "Renderer", "Engine")
	testutil.AssertFinishedBefore(t, compiler, "Engine", "Game")
	testutil.AssertFinishedBefore(t, compiler, "Slate", "Game")
}

func TestRun_BuildFailure(t *testing.T) {
	t.Parallel()

	compiler := testutil.NewSleeperCompiler(nil, time.Millisecond).FailOn("Engine")
	result := testutil.RunIntegrationTest(t, gameProject,
		app.Config{Command: app.CommandBuild, WorkerCount: 1},
		app.WithCompiler(compiler),
	)

	require.Error(t, result.Err)
	var failed *executor.ModuleFailedError
	require.ErrorAs(t, result.Err, &failed)
	assert.Equal(t, "Engine", failed.Module)
	assert.Nil(t, compiler.Record("Game"))
	assert.Contains(t, result.Output, "failed")
}

func TestRun_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		files  map[string]string
		cfg    app.Config
		target error
	}{
		{
			name: "duplicate module",
			files: map[string]string{
				"a.module.hcl": `module "Core" {}`,
				"b.module.hcl": `module "Core" {}`,
			},
			target: registry.ErrDuplicateModule,
		},
		{
			name: "unknown dependency",
			files: map[string]string{
				"x.module.hcl": "module \"X\" {\n  public_dependencies = [\"Ghost\"]\n}\n",
			},
			target: registry.ErrUnknownModule,
		},
		{
			name: "cycle",
			files: map[string]string{
				"a.module.hcl": "module \"A\" {\n  public_dependencies = [\"B\"]\n}\nmodule \"B\" {\n  public_dependencies = [\"A\"]\n}\n",
			},
			target: scheduler.ErrDependencyCycle,
		},
		{
			name: "strict conflicting visibility",
			files: map[string]string{
				"a.module.hcl": "module \"A\" {\n  public_dependencies = [\"B\"]\n  private_dependencies = [\"B\"]\n}\nmodule \"B\" {}\n",
			},
			cfg:    app.Config{Strict: true},
			target: dag.ErrConflictingVisibility,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := testutil.RunIntegrationTest(t, tc.files, tc.cfg)

			require.Error(t, result.Err)
			assert.True(t, errors.Is(result.Err, tc.target), "got %v", result.Err)
			assert.Empty(t, result.Output)
		})
	}
}

func TestRun_CycleReportsPath(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"a.module.hcl": "module \"A\" {\n  public_dependencies = [\"B\"]\n}\nmodule \"B\" {\n  public_dependencies = [\"A\"]\n}\n",
	}
	result := testutil.RunIntegrationTest(t, files, app.Config{})

	var cycle *scheduler.DependencyCycleError
	require.ErrorAs(t, result.Err, &cycle)
	assert.Equal(t, []string{"A", "B", "A"}, cycle.Path)
}

func TestRun_NonStrictPublicWins(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"a.module.hcl": "module \"A\" {\n  public_dependencies = [\"B\"]\n  private_dependencies = [\"B\"]\n}\nmodule \"B\" {}\n",
	}
	result := testutil.RunIntegrationTest(t, files, app.Config{Command: app.CommandGraph, Format: "dot"})

	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, `"A" -> "B";`)
	assert.NotContains(t, result.Output, "dashed")
	assert.Contains(t, result.LogOutput, "treating it as public")
}
