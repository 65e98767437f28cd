// SPDX-License-Identifier: MIT

// Package arith collects the integer number theory the design constructors
// rely on: overflow-checked powers, prime-power decomposition, sums of two
// squares and exact binomial coefficients.
//
// Everything here is deterministic and allocation-light; functions never
// panic on user input and report domain problems with sentinel errors.
//
// Functions:
//
//   - Pow(base, exp)          base^exp, ErrOverflow when it does not fit int
//   - PrimePower(n)           (p, k, true) when n = p^k with p prime, k ≥ 1
//   - IsPrimePower(n)         shorthand for the ok flag of PrimePower
//   - TwoSquares(n)           (a, b, true) with a ≤ b and a² + b² = n
//   - Binomial(n, k)          C(n, k) as *big.Int, zero outside 0 ≤ k ≤ n
//   - ToInt(x)                *big.Int → int, ErrOverflow when out of range
//   - ForEachCombination      k-subsets of 0..n-1 in lexicographic order
//
// Complexity:
//
//   - PrimePower, TwoSquares: O(√n) trial work.
//   - Binomial: delegated to math/big, O(k) multiplications.
package arith
