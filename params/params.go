// SPDX-License-Identifier: MIT

// Package params derives the full parameter tuple (t, v, b, r, k, λ) of a
// t-design from its defining values (t, v, k, λ).
//
// The counts come from the standard double-counting identities
//
//	b = λ·C(v, t) / C(k, t)
//	r = λ·C(v-1, t-1) / C(k-1, t-1)
//
// evaluated with exact big-integer arithmetic and floored. Derive does not
// check that the divisions were exact; that is the job of whoever validates
// the incidence structure the parameters describe.
package params

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvdesign/arith"
)

// ErrInvalidParams indicates inputs outside 1 ≤ t ≤ k ≤ v, λ ≥ 1.
var ErrInvalidParams = errors.New("params: invalid design parameters")

// Params is the parameter tuple of a t-(v, k, λ) design with b blocks and
// replication number r.
type Params struct {
	T      int // strength
	V      int // number of points
	B      int // number of blocks
	R      int // blocks through each point
	K      int // block size
	Lambda int // blocks through each t-subset
}

// String renders the design type, e.g. "2-(7,3,1)".
func (p Params) String() string {
	return fmt.Sprintf("%d-(%d,%d,%d)", p.T, p.V, p.K, p.Lambda)
}

// Derive returns (t, v, b, r, k, λ) for positive t ≤ k ≤ v and λ ≥ 1.
// Errors: ErrInvalidParams for out-of-domain inputs, arith.ErrOverflow when b or
// r does not fit in an int.
// Complexity: O(t) big-integer multiplications.
func Derive(t, v, k, lambda int) (Params, error) {
	if t < 1 || k < t || v < k || lambda < 1 {
		return Params{}, fmt.Errorf("Derive(t=%d, v=%d, k=%d, λ=%d): %w", t, v, k, lambda, ErrInvalidParams)
	}

	l := big.NewInt(int64(lambda))

	// b = floor(λ·C(v,t) / C(k,t))
	bBig := new(big.Int).Mul(l, arith.Binomial(v, t))
	bBig.Quo(bBig, arith.Binomial(k, t))

	// r = floor(λ·C(v-1,t-1) / C(k-1,t-1))
	rBig := new(big.Int).Mul(l, arith.Binomial(v-1, t-1))
	rBig.Quo(rBig, arith.Binomial(k-1, t-1))

	b, err := arith.ToInt(bBig)
	if err != nil {
		return Params{}, fmt.Errorf("Derive: b: %w", err)
	}
	r, err := arith.ToInt(rBig)
	if err != nil {
		return Params{}, fmt.Errorf("Derive: r: %w", err)
	}

	return Params{T: t, V: v, B: b, R: r, K: k, Lambda: lambda}, nil
}
