package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/modgraph/internal/cli"
	"github.com/specialistvlad/modgraph/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modules.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"plan", ".", "--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_Plan(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeManifest(t, `
module "Core" {}

module "Engine" {
  public_dependencies = ["Core"]
}

module "Game" {
  private_dependencies = ["Engine"]
}
`)
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"plan", path, "-o", "json"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"Core"`)
	assert.Less(t, bytes.Index(out.Bytes(), []byte(`"Core"`)), bytes.Index(out.Bytes(), []byte(`"Engine"`)))
	assert.Less(t, bytes.Index(out.Bytes(), []byte(`"Engine"`)), bytes.Index(out.Bytes(), []byte(`"Game"`)))
}

func TestRun_CycleFails(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `
module "A" {
  public_dependencies = ["B"]
}

module "B" {
  private_dependencies = ["A"]
}
`)

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"plan", path})

	require.Error(t, err)
	assert.ErrorIs(t, err, scheduler.ErrDependencyCycle)
	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr), "graph errors are not usage errors")
}

func TestRun_InvalidManifest(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `
module "Broken" {
  public_dependencies = [
`)

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"graph", path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load manifests")
}
