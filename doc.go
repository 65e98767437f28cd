// Package lvdesign constructs and validates combinatorial block designs over
// finite fields: projective and affine geometries, Desarguesian projective
// planes, and the conversion between planes and orthogonal arrays.
//
// What is inside?
//
//	A pure-Go, deterministic library that brings together:
//		• Finite fields GF(p^k) with table-driven arithmetic
//		• Vector spaces over GF(q): canonical subspaces and affine flats
//		• Incidence structures with t-design checks and incidence matrices
//		• Design parameters (t, v, b, r, k, λ) with exact arithmetic
//		• Orthogonal-array verification
//		• Plane constructors, plane ↔ OA duality and an existence oracle
//
// Subpackages:
//
//	arith/       overflow-checked powers, prime powers, sums of two squares, binomials
//	gf/          finite field GF(q) built once, shared read-only
//	vecspace/    F^n, Span, Subspaces(d), AffineFlats(d)
//	params/      t-design parameter derivation
//	incidence/   the Structure type: points, sorted blocks, design checks, Dual
//	oa/          IsOrthogonalArray
//	designs/     ProjectiveGeometry, AffineGeometry, DesarguesianPlane,
//	         PlaneToOA, OAToPlane, PlaneOrderFeasibility, ProjectivePlane(s)
//
// Quick example, the Fano plane as a 2-(7,3,1) design:
//
//	fano, _ := designs.DesarguesianPlane(2)
//	ok, p := fano.IsBlockDesign() // true, 2-(7,3,1)
//	oa, _ := designs.PlaneToOA(fano) // OA(3,2,2) with 4 rows
//
// Every constructor validates its output by default; pass
// designs.WithCheck(false) to skip the check on large inputs.
//
//	go get github.com/katalvlaran/lvdesign
package lvdesign
