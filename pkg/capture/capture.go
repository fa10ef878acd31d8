package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pagestore/testkit/internal"
	"github.com/pagestore/testkit/pkg/util/sequence"
)

// ErrEmptyCommand is returned by Run when the command slice has no
// elements.
const ErrEmptyCommand = internal.Error("empty command")

// Capturer runs commands and captures their output streams to files in a
// fixed directory. Output of the n-th run goes to "<program>_<n>.stdout"
// and "<program>_<n>.stderr", where n comes from a counter owned by the
// Capturer, so repeated runs of the same command never clobber each other.
type Capturer struct {
	dir string
	log *zap.Logger
	seq *sequence.Counter
}

// New constructs a Capturer writing to dir. The directory must exist and be
// writable by the time Run is called. l must not be nil.
func New(dir string, l *zap.Logger) *Capturer {
	return &Capturer{
		dir: dir,
		log: l,
		seq: new(sequence.Counter),
	}
}

// Run executes the command synchronously with its standard output and error
// streams redirected to a fresh ".stdout"/".stderr" file pair, and returns
// the shared path stem of the pair. Pre-existing files at those paths are
// truncated. The streams pass through byte for byte, with no framing or
// re-encoding.
//
// command[0] is the program name or path, the rest are its arguments. The
// child's exit code is not inspected: a command that starts, runs and fails
// still yields a nil error, with its complaints preserved in the ".stderr"
// file. Run returns an error when the command slice is empty, the options
// are invalid, either capture file cannot be created, ctx is cancelled or
// the timeout expires, or the child cannot be started at all; in the last
// case the already-created empty capture files are left in place.
func (c *Capturer) Run(ctx context.Context, command []string, opts Options) (string, error) {
	if len(command) == 0 {
		return "", ErrEmptyCommand
	}

	if err := opts.validate(); err != nil {
		return "", fmt.Errorf("invalid capture options: %w", err)
	}

	base := fmt.Sprintf("%s_%d", filepath.Base(command[0]), c.seq.Next())
	basepath := filepath.Join(c.dir, base)

	stdout, err := os.Create(basepath + ".stdout")
	if err != nil {
		return "", fmt.Errorf("create stdout capture file: %w", err)
	}
	defer stdout.Close()

	stderr, err := os.Create(basepath + ".stderr")
	if err != nil {
		return "", fmt.Errorf("create stderr capture file: %w", err)
	}
	defer stderr.Close()

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	c.log.Info("capturing command output",
		zap.String("base", base),
		zap.Strings("command", command))

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("command %s: %w", command[0], ctxErr)
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("start %s: %w", command[0], err)
		}
	}

	return basepath, nil
}
