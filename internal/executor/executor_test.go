package executor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/inmemorystore"
	"github.com/specialistvlad/modgraph/internal/manifest"
	"github.com/specialistvlad/modgraph/internal/node"
	"github.com/specialistvlad/modgraph/internal/registry"
	"github.com/specialistvlad/modgraph/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mod(name string, public, private []string) *manifest.Manifest {
	return &manifest.Manifest{Name: name, PublicDependencies: public, PrivateDependencies: private}
}

func buildPlan(t *testing.T, mods ...*manifest.Manifest) *scheduler.Plan {
	t.Helper()
	reg := registry.New()
	for _, m := range mods {
		require.NoError(t, reg.Register(m))
	}
	g, err := dag.Build(context.Background(), reg, dag.DefaultEnvironment())
	require.NoError(t, err)
	plan, err := scheduler.Schedule(context.Background(), g)
	require.NoError(t, err)
	return plan
}

// gameProject is a small project with two independent branches.
func gameProject(t *testing.T) *scheduler.Plan {
	return buildPlan(t,
		mod("Game", []string{"Engine"}, []string{"UI"}),
		mod("Engine", []string{"CoreUObject"}, nil),
		mod("UI", []string{"Slate"}, nil),
		mod("CoreUObject", []string{"Core"}, nil),
		mod("Slate", []string{"Core"}, nil),
		mod("Core", nil, nil),
	)
}

// recorder is a compiler that remembers completion order and checks that
// every dependency finished before a module starts.
type recorder struct {
	graph *dag.Graph

	mu       sync.Mutex
	done     map[string]bool
	order    []string
	units    map[string]Unit
	violated []string

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	failOn      string
}

func newRecorder(g *dag.Graph) *recorder {
	return &recorder{graph: g, done: map[string]bool{}, units: map[string]Unit{}}
}

func (r *recorder) Compile(ctx context.Context, u Unit) (any, error) {
	cur := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)
	for {
		prev := r.maxInFlight.Load()
		if cur <= prev || r.maxInFlight.CompareAndSwap(prev, cur) {
			break
		}
	}

	r.mu.Lock()
	for _, d := range r.graph.Dependencies(u.Module.Name) {
		if !r.done[d.Name] {
			r.violated = append(r.violated, u.Module.Name+" before "+d.Name)
		}
	}
	r.units[u.Module.Name] = u
	r.mu.Unlock()

	time.Sleep(2 * time.Millisecond)

	if u.Module.Name == r.failOn {
		return nil, errors.New("syntax error in Module.cpp")
	}

	r.mu.Lock()
	r.done[u.Module.Name] = true
	r.order = append(r.order, u.Module.Name)
	r.mu.Unlock()
	return "obj/" + u.Module.Name + ".o", nil
}

func TestExecute_AllModulesAfterDependencies(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	plan := gameProject(t)
	rec := newRecorder(plan.Graph())
	store := inmemorystore.New()
	exec, err := New(plan, rec, WithWorkers(3), WithStore(store))
	require.NoError(t, err)

	// --- Act ---
	report, err := exec.Execute(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.True(t, report.Succeeded())
	assert.Empty(t, rec.violated)
	assert.Len(t, rec.order, 6)
	assert.LessOrEqual(t, rec.maxInFlight.Load(), int32(3))

	assert.Equal(t, plan.Modules(), outcomeNames(report))
	for _, o := range report.Outcomes {
		assert.Equal(t, node.StatusCompleted, o.Status)
		assert.Equal(t, "obj/"+o.Module+".o", o.Output)
		assert.NoError(t, o.Err)
	}

	status, err := exec.Store().GetStatus(context.Background(), "Game")
	require.NoError(t, err)
	assert.Equal(t, node.StatusCompleted, status)

	game := rec.units["Game"]
	assert.Equal(t, []string{"Engine", "UI", "CoreUObject", "Slate", "Core"}, game.Visible)
	assert.Equal(t, plan.Graph().Environment(), game.Environment)
	pos, _ := plan.Position("Game")
	assert.Equal(t, pos, game.Position)
}

func TestExecute_SingleWorkerFollowsPlanOrder(t *testing.T) {
	t.Parallel()

	plan := gameProject(t)
	rec := newRecorder(plan.Graph())
	exec, err := New(plan, rec, WithWorkers(1))
	require.NoError(t, err)

	_, err = exec.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(1), rec.maxInFlight.Load())
	assert.Empty(t, rec.violated)
	assert.Len(t, rec.order, plan.Len())
}

func TestExecute_FailFastSkipsDependents(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	plan := gameProject(t)
	rec := newRecorder(plan.Graph())
	rec.failOn = "CoreUObject"
	exec, err := New(plan, rec, WithWorkers(1))
	require.NoError(t, err)

	// --- Act ---
	report, err := exec.Execute(context.Background())

	// --- Assert ---
	require.Error(t, err)
	var failed *ModuleFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "CoreUObject", failed.Module)
	assert.Contains(t, err.Error(), "syntax error")

	assert.False(t, report.Succeeded())
	assert.Equal(t, []string{"CoreUObject"}, report.Modules(node.StatusFailed))
	skipped := report.Modules(node.StatusSkipped)
	assert.Contains(t, skipped, "Engine")
	assert.Contains(t, skipped, "Game")
	assert.NotContains(t, rec.order, "Engine")
	assert.NotContains(t, rec.order, "Game")

	for _, o := range report.Outcomes {
		if o.Module == "Engine" {
			assert.ErrorIs(t, o.Err, ErrDependencyFailed)
		}
	}
	// Every module reached a final state.
	for _, o := range report.Outcomes {
		assert.True(t, o.Status.Terminal(), "%s ended %s", o.Module, o.Status)
	}
}

func TestExecute_CancelledContext(t *testing.T) {
	t.Parallel()

	plan := gameProject(t)
	rec := newRecorder(plan.Graph())
	exec, err := New(plan, rec)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := exec.Execute(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.order)
	assert.Equal(t, plan.Len(), report.Count(node.StatusSkipped))
}

func TestExecute_EmptyPlan(t *testing.T) {
	t.Parallel()

	plan := buildPlan(t)
	exec, err := New(plan, CompilerFunc(func(context.Context, Unit) (any, error) {
		t.Error("compiler must not be called")
		return nil, nil
	}))
	require.NoError(t, err)

	report, err := exec.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
	assert.True(t, report.Succeeded())
}

func TestExecute_Metrics(t *testing.T) {
	t.Parallel()

	plan := buildPlan(t,
		mod("Core", nil, nil),
		mod("Engine", []string{"Core"}, nil),
		mod("Game", []string{"Engine"}, nil),
	)
	reg := prometheus.NewRegistry()
	compiler := CompilerFunc(func(_ context.Context, u Unit) (any, error) {
		if u.Module.Name == "Engine" {
			return nil, errors.New("boom")
		}
		return nil, nil
	})
	exec, err := New(plan, compiler, WithMetrics(NewMetrics(reg)))
	require.NoError(t, err)

	_, err = exec.Execute(context.Background())
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	var inFlight float64 = -1
	for _, mf := range families {
		switch mf.GetName() {
		case "modgraph_executor_modules_total":
			for _, m := range mf.GetMetric() {
				counts[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
			}
		case "modgraph_executor_modules_in_flight":
			inFlight = mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{"completed": 1, "failed": 1, "skipped": 1}, counts)
	assert.Equal(t, float64(0), inFlight)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New(nil, CompilerFunc(nil))
	assert.Error(t, err)

	_, err = New(buildPlan(t), nil)
	assert.Error(t, err)
}

func outcomeNames(r *Report) []string {
	out := make([]string, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		out = append(out, o.Module)
	}
	return out
}
