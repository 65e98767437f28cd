// SPDX-License-Identifier: MIT
// Package: lvdesign/incidence
//
// design.go: t-design parameter extraction and checks.

package incidence

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/lvdesign/arith"
	"github.com/katalvlaran/lvdesign/params"
)

// Parameters returns the t-design parameters (t, v, b, r, k, λ) the structure
// would have if it were a t-design: k is the size of the first block, λ the
// number of blocks containing the first t points, and b, r follow from
// params.Derive. It does not check that the structure really is a t-design;
// use IsTDesign for that.
// Errors: ErrNoBlocks, ErrInvalidStrength, params.ErrInvalidParams (e.g. when
// the first t points share no block).
func (s *Structure) Parameters(t int) (params.Params, error) {
	if len(s.blocks) == 0 {
		return params.Params{}, fmt.Errorf("Parameters(%d): %w", t, ErrNoBlocks)
	}
	k := len(s.blocks[0])
	if t < 1 || t > k || t > len(s.points) {
		return params.Params{}, fmt.Errorf("Parameters(%d) with k=%d: %w", t, k, ErrInvalidStrength)
	}

	// blocks through the first t points (positions 0..t-1)
	lambda := 0
	for _, b := range s.pos {
		if containsPrefix(b, t) {
			lambda++
		}
	}

	p, err := params.Derive(t, len(s.points), k, lambda)
	if err != nil {
		return params.Params{}, fmt.Errorf("Parameters(%d): %w", t, err)
	}

	return p, nil
}

// containsPrefix reports whether the ascending position list b contains
// every position 0..t-1.
func containsPrefix(b []int, t int) bool {
	if len(b) < t {
		return false
	}
	for i := 0; i < t; i++ {
		if b[i] != i {
			return false
		}
	}

	return true
}

// IsTDesign reports whether s is a t-(v, k, λ) design: it has v points, every
// block has exactly k points, and every t-subset of points lies in exactly λ
// blocks. Out-of-domain parameters (t < 1, t > k, k > v, λ < 1) give false.
// Complexity: O(b·k) for the shape checks; the full recount, O(b·C(k,t)·t),
// only runs when b·C(k,t) = λ·C(v,t) holds exactly.
func (s *Structure) IsTDesign(t, v, k, lambda int) bool {
	if len(s.points) != v || t < 1 || t > k || k > v || lambda < 1 {
		return false
	}
	for _, b := range s.blocks {
		if len(b) != k {
			return false
		}
	}

	// Counting (block, t-subset) incidences both ways must agree.
	total := new(big.Int).Mul(big.NewInt(int64(len(s.blocks))), arith.Binomial(k, t))
	need := new(big.Int).Mul(big.NewInt(int64(lambda)), arith.Binomial(v, t))
	if total.Cmp(need) != 0 {
		return false
	}
	subsets, err := arith.ToInt(arith.Binomial(v, t))
	if err != nil {
		return false
	}

	binom := colexTable(v, t)
	counts := make(map[int]int)
	ok := true
	for _, b := range s.pos {
		arith.ForEachCombination(k, t, func(idx []int) bool {
			rank := 0
			for i, j := range idx {
				rank += binom[b[j]][i+1]
			}
			counts[rank]++
			if counts[rank] > lambda {
				ok = false
			}

			return ok
		})
		if !ok {
			return false
		}
	}

	// no subset exceeds λ and the totals agree, so every subset must be hit
	return len(counts) == subsets
}

// colexTable returns C(c, j) for 0 ≤ c < v and 0 ≤ j ≤ t, saturating at
// math.MaxInt. Entries reached while ranking a t-subset of 0..v-1 never
// saturate, since each is bounded by C(v, t).
func colexTable(v, t int) [][]int {
	tab := make([][]int, v)
	for c := range tab {
		tab[c] = make([]int, t+1)
		tab[c][0] = 1
		for j := 1; j <= t && j <= c; j++ {
			if c == j {
				tab[c][j] = 1
				continue
			}
			a, b := tab[c-1][j-1], tab[c-1][j]
			if a > math.MaxInt-b {
				tab[c][j] = math.MaxInt
			} else {
				tab[c][j] = a + b
			}
		}
	}

	return tab
}

// IsBlockDesign reports whether s is a t-design for some t ≥ 1 and returns the
// parameters for the largest such t. Every block must have the same size;
// the strengths t = 1, 2, … are tried in order and the search stops at the
// first failure, since a t-design is also a (t-1)-design.
// Complexity: one IsTDesign per strength tried.
func (s *Structure) IsBlockDesign() (bool, params.Params) {
	if len(s.blocks) == 0 {
		return false, params.Params{}
	}
	k := len(s.blocks[0])

	var best params.Params
	found := false
	for t := 1; t <= k; t++ {
		p, err := s.Parameters(t)
		if err != nil || !s.IsTDesign(t, p.V, p.K, p.Lambda) {
			break
		}
		best, found = p, true
	}

	return found, best
}
