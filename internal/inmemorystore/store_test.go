package inmemorystore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/specialistvlad/modgraph/internal/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetStatus(t *testing.T) {
	s := New()
	ctx := context.Background()

	status, err := s.GetStatus(ctx, "Core")
	require.NoError(t, err)
	assert.Equal(t, node.StatusPending, status)

	require.NoError(t, s.SetStatus(ctx, "Core", node.StatusRunning))

	status, err = s.GetStatus(ctx, "Core")
	require.NoError(t, err)
	assert.Equal(t, node.StatusRunning, status)
}

func TestSetAndGetOutput(t *testing.T) {
	s := New()
	ctx := context.Background()

	output, err := s.GetOutput(ctx, "Core")
	require.NoError(t, err)
	assert.Nil(t, output)

	want := map[string]any{"objects": 12}
	require.NoError(t, s.SetOutput(ctx, "Core", want))

	output, err = s.GetOutput(ctx, "Core")
	require.NoError(t, err)
	assert.Equal(t, want, output)
}

func TestSetAndGetError(t *testing.T) {
	s := New()
	ctx := context.Background()

	got, err := s.GetError(ctx, "Core")
	require.NoError(t, err)
	assert.Nil(t, got)

	want := errors.New("compile failed")
	require.NoError(t, s.SetError(ctx, "Core", want))

	got, err = s.GetError(ctx, "Core")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("M%d", i)
			assert.NoError(t, s.SetStatus(ctx, name, node.StatusCompleted))
			assert.NoError(t, s.SetOutput(ctx, name, i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 100; i++ {
		name := fmt.Sprintf("M%d", i)
		status, err := s.GetStatus(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, node.StatusCompleted, status)
		out, err := s.GetOutput(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, i, out)
	}
}
