package util

import (
	"fmt"
	"os/exec"

	"github.com/pagestore/testkit/internal"
)

// ErrExecutableNotFound is returned by LocateExecutable when the search
// path contains no suitable executable.
const ErrExecutableNotFound = internal.Error("executable not found in PATH")

// LocateExecutable resolves name against the operating system's executable
// search path and returns a path usable for execution.
func LocateExecutable(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExecutableNotFound, err)
	}

	return path, nil
}
