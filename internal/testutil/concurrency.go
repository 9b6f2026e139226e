package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/specialistvlad/modgraph/internal/executor"
)

// SleeperCompiler is a compiler for concurrency tests. It sleeps for each
// module and records when the module started and finished.
type SleeperCompiler struct {
	ExecutionTimes map[string]*ExecutionRecord
	mu             sync.Mutex
	sleepDuration  time.Duration
	completionChan chan<- string
	fail           map[string]bool
}

// NewSleeperCompiler creates a new sleeper compiler. completionChan, if not
// nil, receives each module name as it finishes and must be buffered.
func NewSleeperCompiler(completionChan chan<- string, sleep time.Duration) *SleeperCompiler {
	return &SleeperCompiler{
		ExecutionTimes: make(map[string]*ExecutionRecord),
		sleepDuration:  sleep,
		completionChan: completionChan,
		fail:           make(map[string]bool),
	}
}

// FailOn makes compilation of the named modules fail.
func (c *SleeperCompiler) FailOn(modules ...string) *SleeperCompiler {
	for _, m := range modules {
		c.fail[m] = true
	}
	return c
}

// Compile implements executor.Compiler.
func (c *SleeperCompiler) Compile(ctx context.Context, unit executor.Unit) (any, error) {
	name := unit.Module.Name
	startTime := time.Now()
	select {
	case <-time.After(c.sleepDuration):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	endTime := time.Now()

	c.mu.Lock()
	c.ExecutionTimes[name] = &ExecutionRecord{Start: startTime, End: endTime}
	c.mu.Unlock()

	if c.fail[name] {
		return nil, fmt.Errorf("compiler error in %s", name)
	}
	if c.completionChan != nil {
		c.completionChan <- name
	}
	return nil, nil
}

// Record returns the execution record of module, or nil.
func (c *SleeperCompiler) Record(module string) *ExecutionRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ExecutionTimes[module]
}
