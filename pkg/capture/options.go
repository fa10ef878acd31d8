package capture

import (
	"fmt"
	"strings"
	"time"
)

// Options configures a single capture run. The zero value runs the command
// with no time limit, in the inherited environment and working directory.
type Options struct {
	// Timeout bounds the child's execution time. Zero means no limit.
	Timeout time.Duration

	// Env holds KEY=VALUE entries appended to the inherited environment.
	Env []string

	// Dir is the child's working directory. Empty means the caller's one.
	Dir string
}

func (o Options) validate() error {
	if o.Timeout < 0 {
		return fmt.Errorf("negative timeout %s", o.Timeout)
	}

	for i := range o.Env {
		if !strings.Contains(o.Env[i], "=") {
			return fmt.Errorf("environment entry #%d is not of the KEY=VALUE form", i)
		}
	}

	return nil
}
