// SPDX-License-Identifier: MIT
package designs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdesign/designs"
)

func TestPlaneOrderFeasibility(t *testing.T) {
	cases := []struct {
		n      int
		status designs.Status
		reason string
	}{
		{-3, designs.KnownNonexistent, "order <= 1"},
		{0, designs.KnownNonexistent, "order <= 1"},
		{1, designs.KnownNonexistent, "order <= 1"},
		{2, designs.Exists, "GF(2)"},
		{3, designs.Exists, "GF(3)"},
		{4, designs.Exists, "GF(4)"},
		{5, designs.Exists, "GF(5)"},
		{6, designs.KnownNonexistent, "Bruck-Ryser-Chowla"},
		{9, designs.Exists, "GF(9)"},
		{10, designs.KnownNonexistent, "Lam, L. Thiel and S. Swiercz"},
		{12, designs.Unknown, "no construction"},
		{14, designs.KnownNonexistent, "Bruck-Ryser-Chowla"},
		{18, designs.Unknown, "no construction"},
		{21, designs.KnownNonexistent, "Bruck-Ryser-Chowla"},
		{25, designs.Exists, "GF(25)"},
	}
	for _, tc := range cases {
		got := designs.PlaneOrderFeasibility(tc.n)
		assert.Equal(t, tc.n, got.Order)
		assert.Equal(t, tc.status, got.Status, "n=%d: %s", tc.n, got.Reason)
		assert.Contains(t, got.Reason, tc.reason, "n=%d", tc.n)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "exists", designs.Exists.String())
	assert.Equal(t, "known nonexistent", designs.KnownNonexistent.String())
	assert.Equal(t, "unknown", designs.Unknown.String())
	var zero designs.Status
	assert.Equal(t, designs.Unknown, zero)
}

func TestProjectivePlane(t *testing.T) {
	p, err := designs.ProjectivePlane(7)
	require.NoError(t, err)
	requirePlaneAxioms(t, p, 7)

	for _, n := range []int{1, 6, 10, 14} {
		_, err = designs.ProjectivePlane(n)
		assert.ErrorIs(t, err, designs.ErrNoSuchDesign, "n=%d", n)
	}
	_, err = designs.ProjectivePlane(6)
	assert.ErrorContains(t, err, "Bruck-Ryser-Chowla")

	_, err = designs.ProjectivePlane(12)
	assert.ErrorIs(t, err, designs.ErrConstructionUnknown)
	assert.NotErrorIs(t, err, designs.ErrNoSuchDesign)
}
