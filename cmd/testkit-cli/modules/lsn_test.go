package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	var buf bytes.Buffer

	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return buf.String(), err
}

func TestLSNCommands(t *testing.T) {
	out, err := execute("lsn", "encode", "4294967296")
	require.NoError(t, err)
	require.Equal(t, "1/0\n", out)

	out, err = execute("lsn", "decode", "1/0")
	require.NoError(t, err)
	require.Equal(t, "4294967296\n", out)

	_, err = execute("lsn", "decode", "nope")
	require.Error(t, err)

	_, err = execute("lsn", "encode", "not-a-number")
	require.Error(t, err)
}

func TestScaleCommand(t *testing.T) {
	out, err := execute("scale", "1000")
	require.NoError(t, err)
	require.Equal(t, "66\n", out)
}
