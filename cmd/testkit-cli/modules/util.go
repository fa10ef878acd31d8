package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pagestore/testkit/pkg/bench"
	"github.com/pagestore/testkit/pkg/util"
)

var dirsizeCmd = &cobra.Command{
	Use:   "dirsize PATH",
	Short: "Print the total size in bytes of regular files under PATH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := util.DirSize(args[0])
		if err != nil {
			return err
		}

		cmd.Println(size)

		return nil
	},
}

var scaleCmd = &cobra.Command{
	Use:   "scale SIZE_MB",
	Short: "Print the pgbench scale factor for a target database size in MB",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sizeMB, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", args[0], err)
		}

		cmd.Println(bench.ScaleForDBSize(sizeMB))

		return nil
	},
}

var locateCmd = &cobra.Command{
	Use:   "locate NAME",
	Short: "Print the full path of an executable found in PATH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := util.LocateExecutable(args[0])
		if err != nil {
			return err
		}

		cmd.Println(path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dirsizeCmd, scaleCmd, locateCmd)
}
