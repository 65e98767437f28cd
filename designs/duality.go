// SPDX-License-Identifier: MIT
// Package: lvdesign/designs
//
// duality.go: conversion between projective planes and OA(n+1, n, 2).
//
// Contract:
//   • PlaneToOA deletes WithPoint(pt), default n²+n.
//   • OAToPlane adds the point n²+n and one line per column.

package designs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvdesign/incidence"
	"github.com/katalvlaran/lvdesign/oa"
)

// pencilPos locates a point within the pencil through the deleted point:
// line is the pencil line index, at the position inside that line.
type pencilPos struct {
	line, at int
}

// PlaneToOA returns the OA(n+1, n, 2) obtained from a projective plane of
// order n by deleting a point pt together with the n+1 lines through it.
//
// The order is read off the first block (n = |B₀| - 1). The pencil lines, in
// stored block order and with pt removed, become the n+1 columns; the point
// at position i of pencil line j is the symbol i of column j. Each of the n²
// remaining lines meets every pencil line once and becomes the row whose
// column j holds the position of that meeting point.
//
// pt defaults to n² + n (see WithPoint); this is a labelling convention that
// matches the point (1:0:0) of DesarguesianPlane, not a canonical choice.
//
// Errors: ErrMalformedPlane, ErrInvalidPoint, ErrValidationFailed.
// Complexity: O(n³) plus the OA check, O(n⁴).
func PlaneToOA(plane *incidence.Structure, opts ...Option) ([][]int, error) {
	cfg := newConfig(opts...)
	if plane == nil || plane.B() == 0 {
		return nil, fmt.Errorf("PlaneToOA: no blocks: %w", ErrMalformedPlane)
	}

	blocks := plane.Blocks()
	n := len(blocks[0]) - 1
	if n < 1 {
		return nil, fmt.Errorf("PlaneToOA: block size %d: %w", n+1, ErrMalformedPlane)
	}
	if len(blocks) != n*n+n+1 {
		return nil, fmt.Errorf("PlaneToOA: %d blocks, want %d: %w", len(blocks), n*n+n+1, ErrMalformedPlane)
	}

	pt := n*n + n
	if cfg.hasPoint {
		pt = cfg.point
	}
	if !plane.HasPoint(pt) {
		return nil, fmt.Errorf("PlaneToOA: point %d: %w", pt, ErrInvalidPoint)
	}

	// split into the pencil through pt and the future rows
	var pencil, rest [][]int
	for i, blk := range blocks {
		if len(blk) != n+1 {
			return nil, fmt.Errorf("PlaneToOA: block %d has size %d, want %d: %w", i, len(blk), n+1, ErrMalformedPlane)
		}
		if j := slices.Index(blk, pt); j >= 0 {
			pencil = append(pencil, slices.Delete(blk, j, j+1))
		} else {
			rest = append(rest, blk)
		}
	}
	if len(pencil) != n+1 {
		return nil, fmt.Errorf("PlaneToOA: %d lines through %d, want %d: %w", len(pencil), pt, n+1, ErrMalformedPlane)
	}

	relabel := make(map[int]pencilPos, n*(n+1))
	for j, line := range pencil {
		for i, x := range line {
			if _, dup := relabel[x]; dup {
				return nil, fmt.Errorf("PlaneToOA: point %d on two lines through %d: %w", x, pt, ErrMalformedPlane)
			}
			relabel[x] = pencilPos{line: j, at: i}
		}
	}

	rows := make([][]int, len(rest))
	for r, blk := range rest {
		pos := make([]pencilPos, len(blk))
		for i, x := range blk {
			p, ok := relabel[x]
			if !ok {
				return nil, fmt.Errorf("PlaneToOA: point %d not on any line through %d: %w", x, pt, ErrMalformedPlane)
			}
			pos[i] = p
		}
		slices.SortFunc(pos, func(a, b pencilPos) int {
			if a.line != b.line {
				return a.line - b.line
			}
			return a.at - b.at
		})

		row := make([]int, n+1)
		for j, p := range pos {
			if p.line != j {
				return nil, fmt.Errorf("PlaneToOA: block %v misses a line through %d: %w", blk, pt, ErrMalformedPlane)
			}
			row[j] = p.at
		}
		rows[r] = row
	}

	if cfg.check {
		if err := oa.IsOrthogonalArray(rows, n+1, n, 2); err != nil {
			return nil, fmt.Errorf("PlaneToOA: %w: %w", ErrValidationFailed, err)
		}
	}

	return rows, nil
}

// OAToPlane returns the projective plane of order n associated with an
// OA(n+1, n, 2), inverting PlaneToOA up to relabelling.
//
// Symbol j in column i becomes the point i + (n+1)·j, and each row becomes the
// line through its n+1 points. Column i as a whole becomes the pencil line
// {i + (n+1)·j : 0 ≤ j < n} ∪ {n² + n}, so n² + n plays the deleted point.
//
// Errors: ErrMalformedOA (wrong shape, symbols, or, with checking enabled, not
// orthogonal), ErrValidationFailed.
// Complexity: O(n³), plus O(n⁴) for each check.
func OAToPlane(array [][]int, opts ...Option) (*incidence.Structure, error) {
	cfg := newConfig(opts...)
	if len(array) == 0 {
		return nil, fmt.Errorf("OAToPlane: empty array: %w", ErrMalformedOA)
	}
	n := len(array[0]) - 1
	if n < 1 {
		return nil, fmt.Errorf("OAToPlane: width %d: %w", n+1, ErrMalformedOA)
	}
	n2 := n * n
	if len(array) != n2 {
		return nil, fmt.Errorf("OAToPlane: %d rows, want %d for k=n+1, t=2: %w", len(array), n2, ErrMalformedOA)
	}
	for r, row := range array {
		if len(row) != n+1 {
			return nil, fmt.Errorf("OAToPlane: row %d has width %d, want %d: %w", r, len(row), n+1, ErrMalformedOA)
		}
		for _, x := range row {
			if x < 0 || x >= n {
				return nil, fmt.Errorf("OAToPlane: row %d: symbol %d: %w", r, x, ErrMalformedOA)
			}
		}
	}
	if cfg.check {
		if err := oa.IsOrthogonalArray(array, n+1, n, 2); err != nil {
			return nil, fmt.Errorf("OAToPlane: %w: %w", ErrMalformedOA, err)
		}
	}

	blocks := make([][]int, 0, n2+n+1)

	// the n² transversal lines
	for _, row := range array {
		blk := make([]int, n+1)
		for i, j := range row {
			blk[i] = i + (n+1)*j
		}
		blocks = append(blocks, blk)
	}

	// the n+1 lines through the deleted point
	for i := 0; i <= n; i++ {
		blk := make([]int, 0, n+1)
		for j := 0; j < n; j++ {
			blk = append(blk, i+(n+1)*j)
		}
		blocks = append(blocks, append(blk, n2+n))
	}

	name := fmt.Sprintf("Projective plane of order %d (built from an OA(%d,%d,2))", n, n+1, n)

	return blockDesign(n2+n+1, blocks, name, cfg.check)
}
