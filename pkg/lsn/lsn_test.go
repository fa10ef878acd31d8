package lsn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagestore/testkit/pkg/lsn"
)

func TestLSN_String(t *testing.T) {
	for _, tc := range []struct {
		v   lsn.LSN
		exp string
	}{
		{0, "0/0"},
		{1, "0/1"},
		{0xFFFFFFFF, "0/FFFFFFFF"},
		{1 << 32, "1/0"},
		{0x123456789ABCDEF0, "12345678/9ABCDEF0"},
		{0x16B9188000028, "16B91/88000028"},
		{math.MaxUint64, "FFFFFFFF/FFFFFFFF"},
	} {
		require.Equal(t, tc.exp, tc.v.String())
	}
}

func TestParse(t *testing.T) {
	t.Run("round-trip", func(t *testing.T) {
		for _, v := range []lsn.LSN{
			0,
			1,
			0xFFFFFFFF, // biggest value with an empty high word
			1 << 32,    // smallest value with a non-empty high word
			0x123456789ABCDEF0,
			math.MaxUint64,
		} {
			res, err := lsn.Parse(v.String())
			require.NoError(t, err)
			require.Equal(t, v, res)
		}
	})

	t.Run("case-insensitive", func(t *testing.T) {
		lower, err := lsn.Parse("ab/cd")
		require.NoError(t, err)

		upper, err := lsn.Parse("AB/CD")
		require.NoError(t, err)

		require.Equal(t, upper, lower)
		require.EqualValues(t, 0xAB<<32|0xCD, lower)
	})

	t.Run("leading zeros", func(t *testing.T) {
		res, err := lsn.Parse("000001/00000000")
		require.NoError(t, err)
		require.EqualValues(t, 1<<32, res)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, s := range []string{
			"",
			"nope",
			"1/2/3",
			"GG/1",
			"1/GG",
			"/",
			"1/",
			"/1",
			" 1/2",
			"1/2 ",
			"-1/2",
			"0x1/2",
			"1/123456789", // low word overflows 32 bits
			"123456789/0", // high word overflows 32 bits
		} {
			_, err := lsn.Parse(s)
			require.ErrorIs(t, err, lsn.ErrMalformed, s)
		}
	})
}
