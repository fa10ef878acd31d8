package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagestore/testkit/pkg/bench"
)

func TestScaleForDBSize(t *testing.T) {
	for _, tc := range []struct {
		sizeMB int64
		exp    int64
	}{
		{10, 0},      // round(0.6689 - 0.5)
		{100, 6},     // round(6.689 - 0.5)
		{1000, 66},   // round(66.89 - 0.5)
		{1010, 67},   // round(67.5589 - 0.5)
		{3000, 200},  // round(200.67 - 0.5)
		{10000, 668}, // round(668.9 - 0.5)
	} {
		require.Equal(t, tc.exp, bench.ScaleForDBSize(tc.sizeMB), tc.sizeMB)
	}
}
