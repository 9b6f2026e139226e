// Package node holds the runtime counterpart of a scheduled module: the
// counters and state the executor mutates while a Build Plan runs.
package node

import (
	"sync"
	"sync/atomic"

	"github.com/specialistvlad/modgraph/internal/manifest"
)

// Node is one module of a running build.
type Node struct {
	Manifest *manifest.Manifest
	// Position is the module's index in the Build Plan.
	Position int

	// depCount is the number of dependencies that have not completed yet.
	depCount atomic.Int32
	status   atomic.Int32
	skipOnce sync.Once
}

// New creates a pending node waiting on deps dependencies.
func New(m *manifest.Manifest, position, deps int) *Node {
	n := &Node{Manifest: m, Position: position}
	n.depCount.Store(int32(deps))
	return n
}

// Name returns the module name.
func (n *Node) Name() string {
	return n.Manifest.Name
}

// DepCount atomically returns the current number of unmet dependencies.
func (n *Node) DepCount() int32 {
	return n.depCount.Load()
}

// DecrementDepCount atomically decrements the dependency counter and returns the new value.
func (n *Node) DecrementDepCount() int32 {
	return n.depCount.Add(-1)
}

// SetStatus atomically sets the node's status.
func (n *Node) SetStatus(s Status) {
	n.status.Store(int32(s))
}

// Status atomically retrieves the node's status.
func (n *Node) Status() Status {
	return Status(n.status.Load())
}

// Skip marks the node skipped and releases its WaitGroup slot. Only the first
// call has an effect; it reports whether this call did the skipping.
func (n *Node) Skip(wg *sync.WaitGroup) bool {
	var skipped bool
	n.skipOnce.Do(func() {
		n.SetStatus(StatusSkipped)
		wg.Done()
		skipped = true
	})
	return skipped
}
