// SPDX-License-Identifier: MIT

// Package vecspace models the vector space F^n over a finite field and the
// two families of flats the geometry designs are made of: linear subspaces
// (through the origin) and affine cosets x + W.
//
// Representation:
//
//   - Vector: a []gf.Elem of length n.
//   - Vector index: Σ rank(v_i)·q^(n-1-i), i.e. coordinate 0 is the most
//     significant digit. Vectors() enumerates F^n in ascending index.
//   - Subspace: stored by its reduced row echelon basis, which is canonical,
//     so two Subspace values span the same space iff their bases are equal.
//   - Coset: a direction Subspace W plus the unique representative of x + W
//     that is zero on every pivot column of W.
//
// Enumeration order (deterministic):
//
// Subspaces(d) walks pivot-column sets in lexicographic order and, within a
// set, the free entries as a base-q counter. AffineFlats(d) walks Subspaces(d)
// and, for each, the coset representatives in ascending vector index.
//
// Complexity:
//
//   - Subspaces(d): O([n choose d]_q · d·n), the Gaussian binomial count.
//   - AffineFlats(d): O([n choose d]_q · q^n · n).
//   - Contains / IsSubspace: O(d·n) / O(d'·d·n).
//
// These enumerations grow combinatorially; they serve small geometries.
package vecspace
