package dag

import (
	"fmt"
	"runtime"
)

// BuildEnvironment is the ambient target state of a build session. It is
// passed explicitly instead of being read from process globals. Platform,
// Configuration and Toolchain are carried for the compile step and for output;
// they never change the shape of the graph. Strict turns tolerated manifest
// ambiguities into errors.
type BuildEnvironment struct {
	Platform      string
	Configuration string
	Toolchain     string
	Strict        bool
}

// DefaultEnvironment targets the host platform in the Development configuration.
func DefaultEnvironment() BuildEnvironment {
	return BuildEnvironment{
		Platform:      runtime.GOOS + "/" + runtime.GOARCH,
		Configuration: "Development",
		Toolchain:     "default",
	}
}

func (e BuildEnvironment) String() string {
	return fmt.Sprintf("%s %s (%s)", e.Platform, e.Configuration, e.Toolchain)
}
