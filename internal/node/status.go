package node

// Status is the execution state of a module during a build.
type Status int32

const (
	// StatusPending: waiting for dependencies.
	StatusPending Status = iota
	// StatusRunning: handed to the compiler.
	StatusRunning
	// StatusCompleted: compiled successfully.
	StatusCompleted
	// StatusFailed: the compiler returned an error.
	StatusFailed
	// StatusSkipped: never started because a dependency failed or the build
	// was cancelled.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	}
	return "unknown"
}

// Terminal reports whether s is a final state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusSkipped
}
