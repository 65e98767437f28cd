// SPDX-License-Identifier: MIT
// Package: lvdesign/incidence
//
// structure.go: the immutable Structure type and its accessors.

package incidence

import (
	"fmt"
	"slices"
)

// Structure is a finite incidence structure: a point set and an ordered list
// of blocks, each a subset of the points.
type Structure struct {
	name   string
	points []int       // ascending labels
	index  map[int]int // label -> position in points
	blocks [][]int     // each ascending, list lexicographic
	pos    [][]int     // blocks translated to point positions
}

// New builds a Structure over points with the given blocks.
// The inputs are copied; callers may reuse them afterwards.
// Errors: ErrDuplicatePoint, ErrUnknownPoint.
// Complexity: O(v log v + Σ|B| log |B| + b log b · k).
func New(points []int, blocks [][]int, opts ...Option) (*Structure, error) {
	cfg := newConfig(opts...)

	pts := slices.Clone(points)
	slices.Sort(pts)
	index := make(map[int]int, len(pts))
	for i, p := range pts {
		if _, dup := index[p]; dup {
			return nil, fmt.Errorf("New: point %d: %w", p, ErrDuplicatePoint)
		}
		index[p] = i
	}

	blks := make([][]int, len(blocks))
	for i, b := range blocks {
		blk := slices.Clone(b)
		slices.Sort(blk)
		for j, x := range blk {
			if _, ok := index[x]; !ok {
				return nil, fmt.Errorf("New: block %d: point %d: %w", i, x, ErrUnknownPoint)
			}
			if j > 0 && blk[j-1] == x {
				return nil, fmt.Errorf("New: block %d: point %d: %w", i, x, ErrDuplicatePoint)
			}
		}
		blks[i] = blk
	}

	return assemble(cfg.name, pts, index, blks), nil
}

// assemble sorts the block list and indexes it. pts must be ascending and
// duplicate-free, index its label -> position map, and every block ascending
// over labels of pts.
func assemble(name string, pts []int, index map[int]int, blks [][]int) *Structure {
	slices.SortFunc(blks, func(a, b []int) int { return slices.Compare(a, b) })

	pos := make([][]int, len(blks))
	for i, blk := range blks {
		pos[i] = make([]int, len(blk))
		for j, x := range blk {
			pos[i][j] = index[x]
		}
	}

	return &Structure{name: name, points: pts, index: index, blocks: blks, pos: pos}
}

// Name returns the display name.
func (s *Structure) Name() string { return s.name }

// V returns the number of points.
func (s *Structure) V() int { return len(s.points) }

// B returns the number of blocks.
func (s *Structure) B() int { return len(s.blocks) }

// Points returns the point labels in ascending order.
func (s *Structure) Points() []int { return slices.Clone(s.points) }

// Blocks returns a deep copy of the blocks in stored order.
func (s *Structure) Blocks() [][]int {
	out := make([][]int, len(s.blocks))
	for i, b := range s.blocks {
		out[i] = slices.Clone(b)
	}

	return out
}

// Block returns a copy of block i.
// Errors: ErrBlockIndex.
func (s *Structure) Block(i int) ([]int, error) {
	if i < 0 || i >= len(s.blocks) {
		return nil, fmt.Errorf("Block(%d): %w", i, ErrBlockIndex)
	}

	return slices.Clone(s.blocks[i]), nil
}

// HasPoint reports whether label is a point of s.
func (s *Structure) HasPoint(label int) bool {
	_, ok := s.index[label]

	return ok
}

// BlockSizes returns |B| for every block in stored order.
func (s *Structure) BlockSizes() []int {
	out := make([]int, len(s.blocks))
	for i, b := range s.blocks {
		out[i] = len(b)
	}

	return out
}

// Degrees returns, aligned with Points(), the number of blocks through each
// point (the replication numbers).
func (s *Structure) Degrees() []int {
	out := make([]int, len(s.points))
	for _, b := range s.pos {
		for _, p := range b {
			out[p]++
		}
	}

	return out
}

// Equal reports whether s and other have the same points and blocks.
// Names are ignored.
func (s *Structure) Equal(other *Structure) bool {
	if other == nil || !slices.Equal(s.points, other.points) || len(s.blocks) != len(other.blocks) {
		return false
	}
	for i := range s.blocks {
		if !slices.Equal(s.blocks[i], other.blocks[i]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (s *Structure) String() string {
	return fmt.Sprintf("Incidence structure with %d points and %d blocks", len(s.points), len(s.blocks))
}

// Describe renders the full contents, e.g. "Fano plane<points=[0 1 2], blocks=[[0 1 2]]>".
func (s *Structure) Describe() string {
	return fmt.Sprintf("%s<points=%v, blocks=%v>", s.name, s.points, s.blocks)
}
