// SPDX-License-Identifier: MIT
package designs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvdesign/designs"
	"github.com/katalvlaran/lvdesign/incidence"
	"github.com/katalvlaran/lvdesign/oa"
)

func TestPlaneToOA_Golden(t *testing.T) {
	fano, err := designs.DesarguesianPlane(2)
	require.NoError(t, err)
	got, err := designs.PlaneToOA(fano)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, got)

	p3, err := designs.DesarguesianPlane(3)
	require.NoError(t, err)
	got, err = designs.PlaneToOA(p3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 0, 0, 0}, {0, 1, 2, 1}, {0, 2, 1, 2},
		{1, 0, 2, 2}, {1, 1, 1, 0}, {1, 2, 0, 1},
		{2, 0, 1, 1}, {2, 1, 0, 2}, {2, 2, 2, 0},
	}, got)

	got, err = designs.PlaneToOA(p3, designs.WithPoint(0))
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 0, 1, 2}, {0, 2, 0, 1}, {0, 1, 2, 0},
		{1, 0, 2, 1}, {1, 1, 0, 2}, {1, 2, 1, 0},
		{2, 0, 0, 0}, {2, 1, 1, 1}, {2, 2, 2, 2},
	}, got)
}

func TestPlaneToOA_AnyPoint(t *testing.T) {
	p, err := designs.DesarguesianPlane(16, designs.WithCheck(false))
	require.NoError(t, err)
	for _, pt := range []int{0, 3, 7, 272} {
		a, err := designs.PlaneToOA(p, designs.WithPoint(pt), designs.WithCheck(false))
		require.NoError(t, err, "pt=%d", pt)
		require.Len(t, a, 256)
		assert.NoError(t, oa.IsOrthogonalArray(a, 17, 16, 2), "pt=%d", pt)
	}
}

func TestPlaneToOA_Errors(t *testing.T) {
	p, err := designs.DesarguesianPlane(3)
	require.NoError(t, err)

	_, err = designs.PlaneToOA(p, designs.WithPoint(13))
	assert.ErrorIs(t, err, designs.ErrInvalidPoint)
	_, err = designs.PlaneToOA(p, designs.WithPoint(-1))
	assert.ErrorIs(t, err, designs.ErrInvalidPoint)

	_, err = designs.PlaneToOA(nil)
	assert.ErrorIs(t, err, designs.ErrMalformedPlane)

	// drop one line: block count no longer matches the line size
	blocks := p.Blocks()
	short, err := incidence.New(p.Points(), blocks[1:])
	require.NoError(t, err)
	_, err = designs.PlaneToOA(short)
	assert.ErrorIs(t, err, designs.ErrMalformedPlane)

	// right counts, wrong sizes
	blocks[5] = blocks[5][:3]
	ragged, err := incidence.New(p.Points(), blocks)
	require.NoError(t, err)
	_, err = designs.PlaneToOA(ragged)
	assert.ErrorIs(t, err, designs.ErrMalformedPlane)

	// the affine plane has the wrong block count for its line size
	ag, err := designs.AffineGeometry(2, 1, 3)
	require.NoError(t, err)
	_, err = designs.PlaneToOA(ag, designs.WithPoint(0))
	assert.ErrorIs(t, err, designs.ErrMalformedPlane)
}

func TestOAToPlane_Fano(t *testing.T) {
	p, err := designs.OAToPlane([][]int{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	require.NoError(t, err)
	assert.Equal(t, "Projective plane of order 2 (built from an OA(3,2,2))", p.Name())
	requirePlaneAxioms(t, p, 2)
	assert.Contains(t, p.Blocks(), []int{0, 3, 6})
}

func TestOAToPlane_RoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 7, 8} {
		plane, err := designs.DesarguesianPlane(n)
		require.NoError(t, err)
		a, err := designs.PlaneToOA(plane)
		require.NoError(t, err)
		back, err := designs.OAToPlane(a)
		require.NoError(t, err, "n=%d", n)

		order, ok := designs.IsProjectivePlane(back)
		assert.True(t, ok, "n=%d", n)
		assert.Equal(t, n, order)

		want, err := plane.Parameters(2)
		require.NoError(t, err)
		got, err := back.Parameters(2)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestOAToPlane_Errors(t *testing.T) {
	cases := []struct {
		name  string
		array [][]int
	}{
		{"empty", nil},
		{"width one", [][]int{{0}}},
		{"row count", [][]int{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}}},
		{"ragged", [][]int{{0, 0, 0}, {0, 1}, {1, 0, 1}, {1, 1, 0}}},
		{"symbol", [][]int{{0, 0, 0}, {0, 1, 1}, {1, 0, 2}, {1, 1, 0}}},
		{"not orthogonal", [][]int{{0, 0, 0}, {0, 0, 0}, {1, 1, 1}, {1, 1, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := designs.OAToPlane(tc.array)
			assert.ErrorIs(t, err, designs.ErrMalformedOA)
		})
	}
}

func TestOAToPlane_UncheckedSkipsValidation(t *testing.T) {
	bad := [][]int{{0, 0, 0}, {0, 0, 0}, {1, 1, 1}, {1, 1, 1}}
	s, err := designs.OAToPlane(bad, designs.WithCheck(false))
	require.NoError(t, err)
	_, ok := designs.IsProjectivePlane(s)
	assert.False(t, ok)
}

// Any point of any small Desarguesian plane gives a valid OA(n+1, n, 2),
// and that OA gives back a plane of the same order.
func TestDuality_Property(t *testing.T) {
	planes := map[int]*incidence.Structure{}
	for _, n := range []int{2, 3, 4, 5} {
		p, err := designs.DesarguesianPlane(n)
		require.NoError(t, err)
		planes[n] = p
	}

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.SampledFrom([]int{2, 3, 4, 5}).Draw(rt, "n")
		pt := rapid.IntRange(0, n*n+n).Draw(rt, "pt")

		a, err := designs.PlaneToOA(planes[n], designs.WithPoint(pt))
		if err != nil {
			rt.Fatalf("PlaneToOA: %v", err)
		}
		if err := oa.IsOrthogonalArray(a, n+1, n, 2); err != nil {
			rt.Fatalf("not an OA: %v", err)
		}
		back, err := designs.OAToPlane(a)
		if err != nil {
			rt.Fatalf("OAToPlane: %v", err)
		}
		if order, ok := designs.IsProjectivePlane(back); !ok || order != n {
			rt.Fatalf("round trip gave order %d, %v", order, ok)
		}
	})
}
