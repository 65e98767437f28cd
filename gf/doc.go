// SPDX-License-Identifier: MIT

// Package gf implements arithmetic in the finite field GF(q), q = p^k.
//
// What:
//
//   - Field: a finite field of prime-power order with precomputed
//     logarithm/antilogarithm tables of a primitive element, giving O(1)
//     multiplication, inversion and division.
//   - Elem: a field element, identified with its rank in 0..q-1.
//
// Rank contract (stable, relied upon by the design constructors):
//
//	The element of rank r is the polynomial c_0 + c_1·x + … + c_{k-1}·x^{k-1}
//	over GF(p), where r = c_0 + c_1·p + … + c_{k-1}·p^{k-1}.
//
// Rank 0 is zero, rank 1 is one, and for prime fields the rank is simply the
// residue mod p. Elements() lists ranks in ascending order, so any labelling
// built by iterating a field is reproducible across runs and platforms.
//
// The extension modulus is the first monic primitive polynomial of degree k
// when candidates x^k + m(x) are scanned by the rank of m. Primitivity makes x
// (rank p) a generator of the multiplicative group.
//
// FieldOrOrder constraint:
//
// Constructors that accept "a field or its order" use the FieldOrOrder type set
// and Resolve, so callers may pass either a *Field or a plain int.
//
// Errors:
//
//   - ErrInvalidFieldOrder  order is not a prime power (or ≤ 1)
//   - ErrNotInField         rank outside 0..q-1
//   - ErrDivisionByZero     inverse of / division by zero
//   - ErrNilField           nil *Field passed to Resolve
//
// Concurrency: a *Field is immutable after New and safe for concurrent use.
package gf
