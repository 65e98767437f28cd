// SPDX-License-Identifier: MIT

// Package oa checks orthogonal arrays.
//
// An OA(k, n, t) of index one is an n^t × k array over the symbols 0..n-1 in
// which, for every choice of t columns, each of the n^t possible t-tuples of
// symbols appears in exactly one row. OA(n+1, n, 2) is the array form of a
// projective plane of order n.
package oa

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvdesign/arith"
)

var (
	// ErrShape indicates a row count other than n^t or a row width other than k.
	ErrShape = errors.New("oa: wrong shape")

	// ErrSymbol indicates an entry outside 0..n-1.
	ErrSymbol = errors.New("oa: symbol out of range")

	// ErrNotOrthogonal indicates a t-tuple of columns in which some tuple of
	// symbols repeats.
	ErrNotOrthogonal = errors.New("oa: not orthogonal")

	// ErrInvalidParams indicates k < t, t < 1 or n < 1.
	ErrInvalidParams = errors.New("oa: invalid parameters")
)

// IsOrthogonalArray returns nil when a is an OA(k, n, t) of index one.
// Errors: ErrInvalidParams, ErrShape, ErrSymbol, ErrNotOrthogonal (naming the
// offending columns), arith.ErrOverflow when n^t does not fit.
// Complexity: O(C(k, t) · n^t · t) time, O(n^t) space.
func IsOrthogonalArray(a [][]int, k, n, t int) error {
	if t < 1 || k < t || n < 1 {
		return fmt.Errorf("IsOrthogonalArray(k=%d, n=%d, t=%d): %w", k, n, t, ErrInvalidParams)
	}
	rows, err := arith.Pow(n, t)
	if err != nil {
		return fmt.Errorf("IsOrthogonalArray: %w", err)
	}
	if len(a) != rows {
		return fmt.Errorf("IsOrthogonalArray: %d rows, want %d: %w", len(a), rows, ErrShape)
	}
	for i, row := range a {
		if len(row) != k {
			return fmt.Errorf("IsOrthogonalArray: row %d has width %d, want %d: %w", i, len(row), k, ErrShape)
		}
		for j, x := range row {
			if x < 0 || x >= n {
				return fmt.Errorf("IsOrthogonalArray: entry (%d,%d)=%d: %w", i, j, x, ErrSymbol)
			}
		}
	}

	// every row maps to a distinct code within every t-subset of columns
	seen := make([]bool, rows)
	var bad []int
	arith.ForEachCombination(k, t, func(cols []int) bool {
		clear(seen)
		for _, row := range a {
			code := 0
			for _, c := range cols {
				code = code*n + row[c]
			}
			if seen[code] {
				bad = append([]int(nil), cols...)
				return false
			}
			seen[code] = true
		}

		return true
	})
	if bad != nil {
		return fmt.Errorf("IsOrthogonalArray: columns %v: %w", bad, ErrNotOrthogonal)
	}

	return nil
}
