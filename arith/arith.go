// SPDX-License-Identifier: MIT

package arith

import (
	"fmt"
	"math/big"

	"fortio.org/safecast"
)

// Pow returns base^exp computed exactly.
// Returns ErrNegativeExponent for exp < 0 and ErrOverflow when the result
// does not fit in an int.
// Complexity: O(log exp) big multiplications.
func Pow(base, exp int) (int, error) {
	if exp < 0 {
		return 0, fmt.Errorf("Pow(%d, %d): %w", base, exp, ErrNegativeExponent)
	}
	z := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), nil)
	out, err := ToInt(z)
	if err != nil {
		return 0, fmt.Errorf("Pow(%d, %d): %w", base, exp, err)
	}

	return out, nil
}

// ToInt converts x to an int, failing with ErrOverflow when x is out of range.
func ToInt(x *big.Int) (int, error) {
	if !x.IsInt64() {
		return 0, ErrOverflow
	}
	out, err := safecast.Conv[int](x.Int64())
	if err != nil {
		return 0, ErrOverflow
	}

	return out, nil
}

// PrimePower reports whether n = p^k for a prime p and k ≥ 1 and returns
// the decomposition. Values n < 2 are never prime powers.
// Complexity: O(√p) for the smallest prime factor p, then O(log n).
func PrimePower(n int) (p, k int, ok bool) {
	if n < 2 {
		return 0, 0, false
	}

	// smallest prime factor by trial division
	p = n
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			p = d
			break
		}
	}

	// strip every factor p; anything left means a second prime divides n
	m := n
	for m%p == 0 {
		m /= p
		k++
	}
	if m != 1 {
		return 0, 0, false
	}

	return p, k, true
}

// IsPrimePower reports whether n is a power of a prime (primes included).
func IsPrimePower(n int) bool {
	_, _, ok := PrimePower(n)

	return ok
}

// TwoSquares returns a ≤ b with a² + b² = n, choosing the smallest such a.
// ok is false when n is negative or has no such representation.
// Complexity: O(√n) integer square roots.
func TwoSquares(n int) (a, b int, ok bool) {
	if n < 0 {
		return 0, 0, false
	}
	for a = 0; 2*a*a <= n; a++ {
		rest := n - a*a
		b = isqrt(rest)
		if b*b == rest {
			return a, b, true
		}
	}

	return 0, 0, false
}

// isqrt returns floor(√n) for n ≥ 0.
func isqrt(n int) int {
	return int(new(big.Int).Sqrt(big.NewInt(int64(n))).Int64())
}

// Binomial returns the binomial coefficient C(n, k). It is zero when k < 0,
// n < 0 or k > n, matching the combinatorial count of k-subsets.
func Binomial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}
