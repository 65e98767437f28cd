// SPDX-License-Identifier: MIT
package designs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdesign/incidence"
)

// planeOrders are prime powers small enough for exhaustive pair checks.
var planeOrders = []int{2, 3, 4, 5, 7, 8, 9}

// intersect returns |a ∩ b| for ascending slices.
func intersect(a, b []int) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return n
}

// requirePlaneAxioms checks counts, line sizes and that any two lines meet
// in exactly one point.
func requirePlaneAxioms(t *testing.T, s *incidence.Structure, n int) {
	t.Helper()
	v := n*n + n + 1
	require.Equal(t, v, s.V(), "points")
	require.Equal(t, v, s.B(), "blocks")
	blocks := s.Blocks()
	for i, b := range blocks {
		require.Len(t, b, n+1, "block %d", i)
	}
	for i := range blocks {
		for j := i + 1; j < len(blocks); j++ {
			require.Equal(t, 1, intersect(blocks[i], blocks[j]), "blocks %v and %v", blocks[i], blocks[j])
		}
	}
}
