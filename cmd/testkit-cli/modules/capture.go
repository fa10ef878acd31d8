package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagestore/testkit/pkg/capture"
	"github.com/pagestore/testkit/pkg/util"
	"github.com/pagestore/testkit/pkg/util/grace"
)

// Config keys of the capture section.
const (
	cfgCaptureDir     = "capture.dir"
	cfgCaptureTimeout = "capture.timeout"
	cfgCaptureEnv     = "capture.env"
)

var (
	captureDir     string
	captureTimeout time.Duration
	captureEnv     []string
	captureWorkdir string
)

var captureCmd = &cobra.Command{
	Use:   "capture [flags] -- CMD [ARG...]",
	Short: "Run a command and capture its output streams to files",
	Long: `Run a command synchronously and redirect its stdout and stderr to
"<cmd>_<n>.stdout" and "<cmd>_<n>.stderr" in the capture directory, where n
is a per-invocation sequence number. Prints the shared path stem of the two
files. The command's exit code is not checked.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)

	captureCmd.Flags().StringVarP(&captureDir, "dir", "d", "", "capture directory (default from config, then the current one)")
	captureCmd.Flags().DurationVarP(&captureTimeout, "timeout", "t", 0, "kill the command after this duration, 0 means no limit")
	captureCmd.Flags().StringArrayVarP(&captureEnv, "env", "e", nil, "extra KEY=VALUE environment entry (repeatable)")
	captureCmd.Flags().StringVarP(&captureWorkdir, "workdir", "w", "", "working directory for the command")
}

func runCapture(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	dir := captureDir
	if dir == "" {
		dir = viper.GetString(cfgCaptureDir)
	}
	if dir == "" {
		dir = "."
	}

	timeout := captureTimeout
	if timeout == 0 {
		timeout = viper.GetDuration(cfgCaptureTimeout)
	}

	env, err := configEnvEntries()
	if err != nil {
		return err
	}
	env = append(env, captureEnv...)

	if err := util.MkdirAllX(dir, 0755); err != nil {
		return fmt.Errorf("create capture directory: %w", err)
	}

	ctx := grace.NewGracefulContext(log)

	basepath, err := capture.New(dir, log).Run(ctx, args, capture.Options{
		Timeout: timeout,
		Env:     env,
		Dir:     captureWorkdir,
	})
	if err != nil {
		return err
	}

	cmd.Println(basepath)

	return nil
}

// configEnvEntries flattens the capture.env config map into KEY=VALUE form.
func configEnvEntries() ([]string, error) {
	v := viper.Get(cfgCaptureEnv)
	if v == nil {
		return nil, nil
	}

	m, err := cast.ToStringMapStringE(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s config value: %w", cfgCaptureEnv, err)
	}

	res := make([]string, 0, len(m))
	for k, val := range m {
		res = append(res, k+"="+val)
	}

	return res, nil
}
