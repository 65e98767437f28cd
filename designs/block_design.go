// SPDX-License-Identifier: MIT
// Package: lvdesign/designs
//
// block_design.go: BlockDesign wrapper, post-construction validation, IsProjectivePlane.

package designs

import (
	"fmt"

	"github.com/katalvlaran/lvdesign/incidence"
)

// BlockDesign returns the incidence structure on points 0..v-1 with the given
// blocks. With checking enabled (the default) it computes Parameters(2) and
// requires the structure to be a 2-design with exactly those parameters.
// Errors: incidence construction errors, ErrValidationFailed.
func BlockDesign(v int, blocks [][]int, opts ...Option) (*incidence.Structure, error) {
	cfg := newConfig(opts...)

	return blockDesign(v, blocks, cfg.name, cfg.check)
}

func blockDesign(v int, blocks [][]int, name string, check bool) (*incidence.Structure, error) {
	points := make([]int, v)
	for i := range points {
		points[i] = i
	}
	s, err := incidence.New(points, blocks, incidence.WithName(name))
	if err != nil {
		return nil, fmt.Errorf("BlockDesign: %w", err)
	}
	if !check {
		return s, nil
	}
	if err := validate(s); err != nil {
		return nil, fmt.Errorf("BlockDesign: %s: %w", name, err)
	}

	return s, nil
}

// validate requires s to be a 2-design with the parameters it reports.
func validate(s *incidence.Structure) error {
	p, err := s.Parameters(2)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if !s.IsTDesign(p.T, p.V, p.K, p.Lambda) {
		return fmt.Errorf("parameters %s do not hold: %w", p, ErrValidationFailed)
	}

	return nil
}

// IsProjectivePlane reports whether s is a projective plane and returns its
// order n: v = b = n² + n + 1, every block has n + 1 points, and every pair of
// points lies on exactly one block. Order one (the triangle) is accepted.
func IsProjectivePlane(s *incidence.Structure) (int, bool) {
	if s == nil || s.B() == 0 {
		return 0, false
	}
	first, _ := s.Block(0)
	n := len(first) - 1
	if n < 1 {
		return 0, false
	}
	v := n*n + n + 1
	if s.V() != v || s.B() != v || !s.IsTDesign(2, v, n+1, 1) {
		return 0, false
	}

	return n, true
}
