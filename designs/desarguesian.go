// SPDX-License-Identifier: MIT
// Package: lvdesign/designs
//
// desarguesian.go: DesarguesianPlane(n) built directly from field arithmetic.

package designs

import (
	"fmt"

	"github.com/katalvlaran/lvdesign/arith"
	"github.com/katalvlaran/lvdesign/gf"
	"github.com/katalvlaran/lvdesign/incidence"
)

// DesarguesianPlane returns the Desarguesian projective plane PG(2, GF(n)) as a
// 2-(n²+n+1, n+1, 1) design, built line by line from field arithmetic without
// enumerating subspaces. Points are labelled as in the package doc; the lines
// are, in construction order,
//
//	x = s·y + a   for (s, a) ∈ K×K    n² lines, through n² + rank(s)
//	y = a         for a ∈ K           n lines, through n² + n
//	z = 0                             the line at infinity
//
// Errors: ErrInvalidFieldOrder when n is not a prime power, validation errors.
// Complexity: O(n³) field operations (n+1 points on each of n²+n+1 lines);
// validation, when enabled, adds an O(n⁴) pair recount.
func DesarguesianPlane(n int, opts ...Option) (*incidence.Structure, error) {
	cfg := newConfig(opts...)

	f, err := gf.New(n)
	if err != nil {
		return nil, fmt.Errorf("DesarguesianPlane(%d): %w", n, err)
	}
	n2, err := arith.Pow(n, 2)
	if err != nil {
		return nil, fmt.Errorf("DesarguesianPlane(%d): %w", n, err)
	}

	// relabel[i] is the label of the element of rank i. Under gf's rank
	// contract (Elem == rank) this is the identity map.
	K := f.Elements()
	relabel := make([]int, len(K))
	for _, x := range K {
		relabel[f.Rank(x)] = f.Rank(x)
	}

	blocks := make([][]int, 0, n2+n+1)

	// the n² lines x = s·y + a, each with its point at infinity (s:1:0)
	for _, s := range K {
		for _, a := range K {
			blk := make([]int, 0, n+1)
			for _, y := range K {
				x := f.Add(f.Mul(s, y), a)
				blk = append(blk, relabel[x]+n*relabel[y])
			}
			blocks = append(blocks, append(blk, n2+relabel[s]))
		}
	}

	// the n horizontals y = a, through (1:0:0)
	for _, a := range K {
		blk := make([]int, 0, n+1)
		for _, x := range K {
			blk = append(blk, relabel[x]+n*relabel[a])
		}
		blocks = append(blocks, append(blk, n2+n))
	}

	// the line at infinity
	inf := make([]int, n+1)
	for i := range inf {
		inf[i] = n2 + i
	}
	blocks = append(blocks, inf)

	name := fmt.Sprintf("Desarguesian projective plane of order %d", n)

	return blockDesign(n2+n+1, blocks, name, cfg.check)
}
