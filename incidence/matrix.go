// SPDX-License-Identifier: MIT
// Package: lvdesign/incidence
//
// matrix.go: incidence matrices and the dual structure.

package incidence

import "fmt"

// IncidenceMatrix returns the v×b 0/1 matrix M with M[i][j] = 1 iff the i-th
// point (ascending label order) lies in block j (stored order).
// Complexity: O(v·b) space, O(v·b + Σ|B|) time.
func (s *Structure) IncidenceMatrix() [][]int {
	m := make([][]int, len(s.points))
	for i := range m {
		m[i] = make([]int, len(s.blocks))
	}
	for j, b := range s.pos {
		for _, p := range b {
			m[p][j] = 1
		}
	}

	return m
}

// FromMatrix builds the structure whose points are the rows 0..v-1 of m and
// whose blocks are its columns: block j = { i : m[i][j] = 1 }.
// Errors: ErrRaggedMatrix, ErrNonBinary.
func FromMatrix(m [][]int, opts ...Option) (*Structure, error) {
	v := len(m)
	b := 0
	if v > 0 {
		b = len(m[0])
	}

	points := make([]int, v)
	blocks := make([][]int, b)
	for i, row := range m {
		if len(row) != b {
			return nil, fmt.Errorf("FromMatrix: row %d has %d entries, want %d: %w", i, len(row), b, ErrRaggedMatrix)
		}
		points[i] = i
		for j, x := range row {
			switch x {
			case 0:
			case 1:
				blocks[j] = append(blocks[j], i)
			default:
				return nil, fmt.Errorf("FromMatrix: entry (%d,%d)=%d: %w", i, j, x, ErrNonBinary)
			}
		}
	}

	return New(points, blocks, opts...)
}

// Dual returns the dual structure: its points are the block indices 0..b-1 of
// s, and for every point of s (ascending) there is one block listing the
// indices of the blocks through it. The dual of a projective plane is again a
// projective plane.
func (s *Structure) Dual() *Structure {
	points := make([]int, len(s.blocks))
	index := make(map[int]int, len(points))
	for i := range points {
		points[i], index[i] = i, i
	}
	// visiting blocks in order keeps every dual block ascending
	blocks := make([][]int, len(s.points))
	for j, b := range s.pos {
		for _, p := range b {
			blocks[p] = append(blocks[p], j)
		}
	}

	return assemble("Dual of "+s.name, points, index, blocks)
}
