// SPDX-License-Identifier: MIT
package designs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdesign/designs"
	"github.com/katalvlaran/lvdesign/incidence"
)

var fanoBlocks = [][]int{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}, {1, 3, 5}, {1, 4, 6}, {2, 3, 6}, {2, 4, 5}}

func TestBlockDesign(t *testing.T) {
	s, err := designs.BlockDesign(7, fanoBlocks)
	require.NoError(t, err)
	assert.Equal(t, "BlockDesign", s.Name())
	assert.Equal(t, 7, s.B())

	s, err = designs.BlockDesign(7, fanoBlocks, designs.WithName("Fano"))
	require.NoError(t, err)
	assert.Equal(t, "Fano", s.Name())
	assert.Contains(t, s.Describe(), "Fano<points=")
}

func TestBlockDesign_Validation(t *testing.T) {
	// {0,1} lies in two blocks, {0,2} in one
	notDesign := [][]int{{0, 1, 2}, {0, 1, 3}, {2, 3, 4}}
	_, err := designs.BlockDesign(5, notDesign)
	assert.ErrorIs(t, err, designs.ErrValidationFailed)

	s, err := designs.BlockDesign(5, notDesign, designs.WithCheck(false))
	require.NoError(t, err)
	assert.Equal(t, 3, s.B())
}

func TestBlockDesign_StructureErrors(t *testing.T) {
	_, err := designs.BlockDesign(3, [][]int{{0, 1, 5}})
	assert.ErrorIs(t, err, incidence.ErrUnknownPoint)

	_, err = designs.BlockDesign(3, [][]int{{0, 0, 1}}, designs.WithCheck(false))
	assert.ErrorIs(t, err, incidence.ErrDuplicatePoint)

	_, err = designs.BlockDesign(3, nil)
	assert.ErrorIs(t, err, designs.ErrValidationFailed)
	assert.ErrorIs(t, err, incidence.ErrNoBlocks)
}
