// SPDX-License-Identifier: MIT
// Package: lvdesign/designs
//
// geometry.go: ProjectiveGeometry and AffineGeometry constructors.
//
// Contract:
//   • n ≥ 1 and 1 ≤ d ≤ n (else ErrInvalidDimension).
//   • Points and blocks are labelled in vecspace enumeration order.

package designs

import (
	"fmt"

	"github.com/katalvlaran/lvdesign/gf"
	"github.com/katalvlaran/lvdesign/incidence"
	"github.com/katalvlaran/lvdesign/vecspace"
)

// ProjectiveGeometry returns the projective geometry design PG_d(n, F): its
// points are the 1-dimensional subspaces of F^(n+1) (there are
// (q^(n+1)-1)/(q-1) of them, labelled in Subspaces(1) order) and its blocks
// are the (d+1)-dimensional subspaces, block i holding every point j with
// point_j ⊆ flat_i.
//
// field is a *gf.Field or an int order. Requires n ≥ 1 and 1 ≤ d ≤ n.
// Errors: ErrInvalidFieldOrder, ErrInvalidDimension, validation errors.
//
// Complexity: O(#points · #flats · d · n) containment tests on top of the
// subspace enumeration. Both counts are Gaussian binomials, so runtime grows
// very quickly with n and q; prefer DesarguesianPlane for n = 2, d = 1.
func ProjectiveGeometry[F gf.FieldOrOrder](n, d int, field F, opts ...Option) (*incidence.Structure, error) {
	cfg := newConfig(opts...)
	if n < 1 || d < 1 || d > n {
		return nil, fmt.Errorf("ProjectiveGeometry(n=%d, d=%d): %w", n, d, ErrInvalidDimension)
	}
	f, err := gf.Resolve(field)
	if err != nil {
		return nil, fmt.Errorf("ProjectiveGeometry: %w", err)
	}
	space, err := vecspace.New(f, n+1)
	if err != nil {
		return nil, fmt.Errorf("ProjectiveGeometry: %w", err)
	}

	points, err := space.Subspaces(1)
	if err != nil {
		return nil, fmt.Errorf("ProjectiveGeometry: %w", err)
	}
	flats, err := space.Subspaces(d + 1)
	if err != nil {
		return nil, fmt.Errorf("ProjectiveGeometry: %w", err)
	}

	blocks := make([][]int, len(flats))
	for i, flat := range flats {
		for j, p := range points {
			if p.IsSubspace(flat) {
				blocks[i] = append(blocks[i], j)
			}
		}
	}

	return blockDesign(len(points), blocks, "ProjectiveGeometryDesign", cfg.check)
}

// AffineGeometry returns the affine geometry design AG_d(n, F): its points are
// the q^n vectors of F^n (labelled by vector index) and its blocks are the
// d-dimensional affine flats x + W, each block holding the labels of its q^d
// vectors. It is a 2-(q^n, q^d, λ) design.
//
// field is a *gf.Field or an int order. Requires n ≥ 1 and 1 ≤ d ≤ n.
// Errors: ErrInvalidFieldOrder, ErrInvalidDimension, arith.ErrOverflow,
// validation errors.
//
// Complexity: O([n choose d]_q · q^n · n) to enumerate the flats.
func AffineGeometry[F gf.FieldOrOrder](n, d int, field F, opts ...Option) (*incidence.Structure, error) {
	cfg := newConfig(opts...)
	if n < 1 || d < 1 || d > n {
		return nil, fmt.Errorf("AffineGeometry(n=%d, d=%d): %w", n, d, ErrInvalidDimension)
	}
	f, err := gf.Resolve(field)
	if err != nil {
		return nil, fmt.Errorf("AffineGeometry: %w", err)
	}
	space, err := vecspace.New(f, n)
	if err != nil {
		return nil, fmt.Errorf("AffineGeometry: %w", err)
	}

	flats, err := space.AffineFlats(d)
	if err != nil {
		return nil, fmt.Errorf("AffineGeometry: %w", err)
	}

	blocks := make([][]int, len(flats))
	for i, flat := range flats {
		els := flat.Elements()
		blocks[i] = make([]int, len(els))
		for j, v := range els {
			if blocks[i][j], err = space.Index(v); err != nil {
				return nil, fmt.Errorf("AffineGeometry: flat %d: %w", i, err)
			}
		}
	}

	return blockDesign(space.Size(), blocks, "AffineGeometryDesign", cfg.check)
}
