package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pagestore/testkit/pkg/lsn"
)

var lsnCmd = &cobra.Command{
	Use:   "lsn",
	Short: "Convert log sequence numbers between integer and hex forms",
}

var lsnEncodeCmd = &cobra.Command{
	Use:   "encode N",
	Short: "print the HIGH/LOW hex form of a decimal LSN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid LSN value %q: %w", args[0], err)
		}

		cmd.Println(lsn.LSN(v))

		return nil
	},
}

var lsnDecodeCmd = &cobra.Command{
	Use:   "decode HIGH/LOW",
	Short: "print the decimal value of a HIGH/LOW hex LSN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := lsn.Parse(args[0])
		if err != nil {
			return err
		}

		cmd.Println(uint64(v))

		return nil
	},
}

func init() {
	lsnCmd.AddCommand(lsnEncodeCmd, lsnDecodeCmd)
	rootCmd.AddCommand(lsnCmd)
}
